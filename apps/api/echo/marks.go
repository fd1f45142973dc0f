package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core/marks"
)

type marksApi struct {
	svc *marks.Service
}

func registerMarksAPI(g *echo.Group, svc *marks.Service) {
	api := marksApi{svc: svc}

	mg := g.Group("/marks")
	mg.GET("", api.query)
	mg.POST("/sheets", api.saveSheet)
}

// Handlers

func (api *marksApi) query(ctx echo.Context) error {
	if studentID := ctx.QueryParam("student"); studentID != "" {
		records, err := api.svc.ByStudent(studentID)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, records)
	}

	records, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *marksApi) saveSheet(ctx echo.Context) error {
	var sheet marks.Sheet
	if err := ctx.Bind(&sheet); err != nil {
		return errors.Wrap(err, "binding to Sheet")
	}
	if err := sheet.Validate(); err != nil {
		return err
	}

	records, err := api.svc.SaveSheet(sheet)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"saved": len(records)})
}
