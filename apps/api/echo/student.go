package echoapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/student"
)

type studentApi struct {
	svc *student.Service
}

func registerStudentAPI(g *echo.Group, svc *student.Service) {
	api := studentApi{svc: svc}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.POST("/import", api.imports)
	sg.GET("/export", api.export)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)

	g.GET("/classes", api.queryClasses)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	if q := ctx.QueryParam("search"); q != "" {
		students, err := api.svc.Search(q)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, students)
	}

	var key core.ClassKey
	if err := ctx.Bind(&key); err != nil {
		return errors.Wrap(err, "binding to ClassKey")
	}
	if !key.IsZero() {
		cohort, err := api.svc.Cohort(key)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, cohort)
	}

	students, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	st, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	st, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) update(ctx echo.Context) error {
	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	st, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// imports ingests a roster body: CSV by default, JSON with ?format=json.
func (api *studentApi) imports(ctx echo.Context) error {
	var (
		students []student.Student
		err      error
	)
	if ctx.QueryParam("format") == "json" {
		students, err = api.svc.ImportJSON(ctx.Request().Body)
	} else {
		students, err = api.svc.ImportCSV(ctx.Request().Body)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"imported": len(students)})
}

func (api *studentApi) export(ctx echo.Context) error {
	filename := fmt.Sprintf("students_export_%s.csv", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+filename)
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().WriteHeader(http.StatusOK)
	return api.svc.ExportCSV(ctx.Response())
}

func (api *studentApi) queryClasses(ctx echo.Context) error {
	keys, err := api.svc.ClassKeys()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, keys)
}
