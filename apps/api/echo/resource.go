package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/newlifekgl/cellhub/core/resource"
)

type resourceApi struct {
	svc *resource.Service
}

func registerResourceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *resource.Service) {
	api := resourceApi{svc: svc}

	mg := g.Group("/materials", jwt)
	mg.GET("", api.queryMaterials)
	mg.POST("", api.addMaterial, adminMiddleware())

	ag := g.Group("/announcements", jwt)
	ag.GET("", api.queryAnnouncements)
	ag.POST("", api.addAnnouncement, adminMiddleware())
}

// Handlers

func (api *resourceApi) queryMaterials(ctx echo.Context) error {
	materials, err := api.svc.QueryMaterials()
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	return ctx.JSON(http.StatusOK, materials)
}

func (api *resourceApi) addMaterial(ctx echo.Context) error {
	var data resource.NewMaterial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMaterial")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	m, err := api.svc.AddMaterial(data)
	if err != nil {
		return errors.Wrap(err, "adding material")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *resourceApi) queryAnnouncements(ctx echo.Context) error {
	announcements, err := api.svc.QueryAnnouncements()
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, announcements)
}

func (api *resourceApi) addAnnouncement(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data resource.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	data.Author = claims.Name
	if err := data.Validate(); err != nil {
		return err
	}

	ann, err := api.svc.AddAnnouncement(data)
	if err != nil {
		return errors.Wrap(err, "adding announcement")
	}
	return ctx.JSON(http.StatusCreated, ann)
}
