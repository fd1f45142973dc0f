package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/faculty"
)

type facultyApi struct {
	svc *faculty.Service
}

func registerFacultyAPI(g *echo.Group, svc *faculty.Service) {
	api := facultyApi{svc: svc}

	fg := g.Group("/faculty")
	fg.GET("", api.query)
	fg.POST("", api.create)
	fg.GET("/:id", api.retrieve)
	fg.PUT("/:id", api.update)
	fg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *facultyApi) query(ctx echo.Context) error {
	var key core.ClassKey
	if err := ctx.Bind(&key); err != nil {
		return errors.Wrap(err, "binding to ClassKey")
	}
	if !key.IsZero() {
		members, err := api.svc.ForClass(key)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, members)
	}

	members, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, members)
}

func (api *facultyApi) create(ctx echo.Context) error {
	var data faculty.NewFaculty
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFaculty")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	f, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, f)
}

func (api *facultyApi) retrieve(ctx echo.Context) error {
	f, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *facultyApi) update(ctx echo.Context) error {
	var data faculty.UpdateFaculty
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFaculty")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	f, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *facultyApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
