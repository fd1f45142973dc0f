package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/performance"
	"github.com/vidyasetu/vidyasetu/core/student"
)

type performanceApi struct {
	students   *student.Service
	faculty    *faculty.Service
	attendance *attendance.Service
	marks      *marks.Service
}

func registerPerformanceAPI(
	g *echo.Group,
	students *student.Service,
	fac *faculty.Service,
	att *attendance.Service,
	mks *marks.Service,
) {
	api := performanceApi{students: students, faculty: fac, attendance: att, marks: mks}

	g.GET("/performance", api.report)
	g.GET("/dashboard", api.dashboard)
}

// Handlers

func (api *performanceApi) report(ctx echo.Context) error {
	var (
		students []student.Student
		err      error
	)
	if q := ctx.QueryParam("search"); q != "" {
		students, err = api.students.Search(q)
	} else {
		students, err = api.students.QueryAll()
	}
	if err != nil {
		return err
	}

	att, err := api.attendance.QueryAll()
	if err != nil {
		return err
	}
	mks, err := api.marks.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, performance.Report(students, att, mks))
}

func (api *performanceApi) dashboard(ctx echo.Context) error {
	students, err := api.students.QueryAll()
	if err != nil {
		return err
	}
	members, err := api.faculty.QueryAll()
	if err != nil {
		return err
	}
	att, err := api.attendance.QueryAll()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"totalStudents": len(students),
		"totalFaculty":  len(members),
		"avgAttendance": performance.AverageAttendance(att),
		"lowAttendance": performance.LowAttendanceCount(att),
	})
}
