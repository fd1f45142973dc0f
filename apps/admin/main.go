package main

import (
	"log"
	"os"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/department"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/student"
	"github.com/vidyasetu/vidyasetu/services/logger"
	"github.com/vidyasetu/vidyasetu/storage/document"
)

func main() {
	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags)
	logger := logsvc.NewStdLogger(std)

	db, err := document.Open(core.Conf.GetString("dataFile"), logger)
	if err != nil {
		std.Fatalf("opening document store: %+v", err)
	}

	lectureSvc := lecture.NewService(document.NewLectureRepository(db))
	studentSvc := student.NewService(document.NewStudentRepository(db))

	cli := commandLine{
		db:            db,
		deptSvc:       department.NewService(document.NewDepartmentRepository(db)),
		studentSvc:    studentSvc,
		facultySvc:    faculty.NewService(document.NewFacultyRepository(db)),
		lectureSvc:    lectureSvc,
		attendanceSvc: attendance.NewService(document.NewAttendanceRepository(db), lectureSvc, studentSvc, nil),
		markSvc:       marks.NewService(document.NewMarkRepository(db)),
	}
	if err := cli.run(os.Args); err != nil && err != errHelp {
		std.Fatalf("%+v", err)
	}
}
