package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core/attendance"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	ag := g.Group("/attendance")
	ag.GET("", api.query)
	ag.POST("/sheets", api.saveSheet)
}

// Handlers

func (api *attendanceApi) query(ctx echo.Context) error {
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

func (api *attendanceApi) saveSheet(ctx echo.Context) error {
	var sheet attendance.Sheet
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
