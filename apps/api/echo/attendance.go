package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/user"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	ag := g.Group("/attendance", jwt)
	ag.GET("", api.forDay)
	ag.POST("", api.save)
	ag.GET("/sessions", api.sessionLog)
	ag.GET("/followups", api.followUps)
	ag.GET("/weekly-stats", api.weeklyStats, adminMiddleware())
}

// Handlers

func (api *attendanceApi) forDay(ctx echo.Context) error {
	cellID, err := scopedCellID(ctx, ctx.QueryParam("cell_id"))
	if err != nil {
		return err
	}

	records, err := api.svc.ForDay(cellID, ctx.QueryParam("date"))
	if err != nil {
		return errors.Wrap(err, "querying day records")
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) save(ctx echo.Context) error {
	var records []attendance.Record
	if err := ctx.Bind(&records); err != nil {
		return errors.Wrap(err, "binding to records")
	}
	// the whole register shares one cell; a leader may only save their own
	if len(records) > 0 {
		if _, err := scopedCellID(ctx, records[0].CellID); err != nil {
			return err
		}
	}

	if err := api.svc.Save(records); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *attendanceApi) sessionLog(ctx echo.Context) error {
	cellID, err := scopedCellID(ctx, ctx.QueryParam("cell_id"))
	if err != nil {
		return err
	}

	log, err := api.svc.SessionLog(cellID)
	if err != nil {
		return errors.Wrap(err, "querying session log")
	}
	return ctx.JSON(http.StatusOK, log)
}

func (api *attendanceApi) followUps(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	tasks, err := api.svc.FollowUps(user.User{
		ID:     claims.Subject,
		Role:   claims.Role,
		CellID: claims.CellID,
	})
	if err != nil {
		return errors.Wrap(err, "querying follow ups")
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *attendanceApi) weeklyStats(ctx echo.Context) error {
	stats, err := api.svc.WeeklyStats()
	if err != nil {
		return errors.Wrap(err, "querying weekly stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}
