package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/lecture"
)

type lectureApi struct {
	svc *lecture.Service
}

func registerLectureAPI(g *echo.Group, svc *lecture.Service) {
	api := lectureApi{svc: svc}

	lg := g.Group("/lectures")
	lg.GET("", api.query)
	lg.POST("", api.create)
	lg.GET("/:id", api.retrieve)
	lg.PUT("/:id", api.update)
	lg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *lectureApi) query(ctx echo.Context) error {
	var key core.ClassKey
	if err := ctx.Bind(&key); err != nil {
		return errors.Wrap(err, "binding to ClassKey")
	}
	if !key.IsZero() {
		lectures, err := api.svc.ForClass(key)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, lectures)
	}

	lectures, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lectures)
}

func (api *lectureApi) create(ctx echo.Context) error {
	var data lecture.NewLecture
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLecture")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	l, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, l)
}

func (api *lectureApi) retrieve(ctx echo.Context) error {
	l, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lectureApi) update(ctx echo.Context) error {
	var data lecture.UpdateLecture
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateLecture")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	l, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lectureApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
