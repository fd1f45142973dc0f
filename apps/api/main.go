package main

import (
	"log"
	"os"

	"github.com/vidyasetu/vidyasetu/apps/api/echo"
	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/department"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/student"
	"github.com/vidyasetu/vidyasetu/services/email"
	"github.com/vidyasetu/vidyasetu/services/logger"
	"github.com/vidyasetu/vidyasetu/storage/document"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	// set up services
	var logger core.Logger
	var mailSvc core.EmailService
	if core.Conf.GetBool("debug") {
		logger = logsvc.NewStdLogger(std)
		mailSvc = emailsvc.NewConsoleService()
	} else {
		logger = logsvc.NewRollbarLogger(std)
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// set up the document store & repos
	db, err := document.Open(core.Conf.GetString("dataFile"), logger)
	if err != nil {
		std.Fatalf("opening document store: %+v", err)
	}

	deptSvc := department.NewService(document.NewDepartmentRepository(db))
	studentSvc := student.NewService(document.NewStudentRepository(db))
	facultySvc := faculty.NewService(document.NewFacultyRepository(db))
	lectureSvc := lecture.NewService(document.NewLectureRepository(db))
	attendanceSvc := attendance.NewService(document.NewAttendanceRepository(db), lectureSvc, studentSvc, mailSvc)
	markSvc := marks.NewService(document.NewMarkRepository(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:       core.Conf.GetString("address"),
			Logger:        logger,
			DB:            db,
			DeptSvc:       deptSvc,
			StudentSvc:    studentSvc,
			FacultySvc:    facultySvc,
			LectureSvc:    lectureSvc,
			AttendanceSvc: attendanceSvc,
			MarkSvc:       markSvc,
		},
	)
	app.Start()
}
