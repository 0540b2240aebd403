package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/member"
)

type memberApi struct {
	svc    *member.Service
	attSvc *attendance.Service
}

func registerMemberAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *member.Service, attSvc *attendance.Service) {
	api := memberApi{svc: svc, attSvc: attSvc}

	mg := g.Group("/members", jwt)
	mg.GET("", api.query)
	mg.POST("", api.create)
	mg.GET("/:id/history", api.history)
}

// Handlers

func (api *memberApi) query(ctx echo.Context) error {
	cellID, err := scopedCellID(ctx, ctx.QueryParam("cell_id"))
	if err != nil {
		return err
	}

	members, err := api.svc.Query(cellID)
	if err != nil {
		return errors.Wrap(err, "querying members")
	}
	return ctx.JSON(http.StatusOK, members)
}

func (api *memberApi) create(ctx echo.Context) error {
	var data member.NewMember
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMember")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	// a leader may only register members into their own cell
	if _, err := scopedCellID(ctx, data.CellID); err != nil {
		return err
	}

	m, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating member")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *memberApi) history(ctx echo.Context) error {
	m, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	if _, err := scopedCellID(ctx, m.CellID); err != nil {
		return err
	}

	records, err := api.attSvc.MemberHistory(m.ID)
	if err != nil {
		return errors.Wrap(err, "querying member history")
	}
	return ctx.JSON(http.StatusOK, records)
}
