package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core/department"
)

type departmentApi struct {
	svc *department.Service
}

func registerDepartmentAPI(g *echo.Group, svc *department.Service) {
	api := departmentApi{svc: svc}

	g.GET("/department", api.retrieve)
	g.POST("/department/batches", api.addBatch)
	g.GET("/settings", api.settings)
	g.PUT("/settings", api.updateSettings)
}

// Handlers

func (api *departmentApi) retrieve(ctx echo.Context) error {
	dept, err := api.svc.Get()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dept)
}

func (api *departmentApi) addBatch(ctx echo.Context) error {
	var data department.NewBatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBatch")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	batch, err := api.svc.AddBatch(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, batch)
}

func (api *departmentApi) settings(ctx echo.Context) error {
	dept, err := api.svc.Get()
	if err != nil {
		return err
	}
	usr, err := api.svc.CurrentUser()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"departmentName": dept.Name,
		"currentUser":    usr,
	})
}

func (api *departmentApi) updateSettings(ctx echo.Context) error {
	var data department.Settings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Settings")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.UpdateSettings(data); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
