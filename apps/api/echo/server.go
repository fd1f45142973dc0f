package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/department"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/student"
	"github.com/vidyasetu/vidyasetu/storage/document"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Logger        core.Logger
		DB            *document.DB
		DeptSvc       *department.Service
		StudentSvc    *student.Service
		FacultySvc    *faculty.Service
		LectureSvc    *lecture.Service
		AttendanceSvc *attendance.Service
		MarkSvc       *marks.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerDepartmentAPI(v1, s.opts.DeptSvc)
	registerStudentAPI(v1, s.opts.StudentSvc)
	registerFacultyAPI(v1, s.opts.FacultySvc)
	registerLectureAPI(v1, s.opts.LectureSvc)
	registerAttendanceAPI(v1, s.opts.AttendanceSvc)
	registerMarksAPI(v1, s.opts.MarkSvc)
	registerPerformanceAPI(v1, s.opts.StudentSvc, s.opts.FacultySvc, s.opts.AttendanceSvc, s.opts.MarkSvc)
	registerBackupAPI(v1, s.opts.DB)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the VidyaSetu API!")
}
