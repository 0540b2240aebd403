package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/cell"
)

type cellApi struct {
	svc    *cell.Service
	attSvc *attendance.Service
}

func registerCellAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *cell.Service, attSvc *attendance.Service) {
	api := cellApi{svc: svc, attSvc: attSvc}

	cg := g.Group("/cells", jwt)
	cg.GET("", api.query)
	cg.POST("", api.create, adminMiddleware())
	cg.PUT("/:id/leader", api.reassignLeader, adminMiddleware())
	cg.GET("/reports", api.reports, adminMiddleware())
	cg.GET("/overview", api.overview, adminMiddleware())
}

// Handlers

func (api *cellApi) query(ctx echo.Context) error {
	cells, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying cells")
	}
	return ctx.JSON(http.StatusOK, cells)
}

func (api *cellApi) create(ctx echo.Context) error {
	var data cell.NewCell
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCell")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	c, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating cell")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *cellApi) reassignLeader(ctx echo.Context) error {
	var data cell.ReassignLeader
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReassignLeader")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.ReassignLeader(ctx.Param("id"), data.LeaderID); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *cellApi) reports(ctx echo.Context) error {
	reports, err := api.attSvc.CellReports()
	if err != nil {
		return errors.Wrap(err, "building cell reports")
	}
	return ctx.JSON(http.StatusOK, reports)
}

func (api *cellApi) overview(ctx echo.Context) error {
	overview, err := api.attSvc.Overview()
	if err != nil {
		return errors.Wrap(err, "building attendance overview")
	}
	return ctx.JSON(http.StatusOK, overview)
}
