package testutil

import (
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/student"
	"github.com/vidyasetu/vidyasetu/services/logger"
	"github.com/vidyasetu/vidyasetu/storage/document"
)

// OpenDB opens a fresh document store in a per-test temp dir.
func OpenDB(t *testing.T) *document.DB {
	t.Helper()
	db, err := document.Open(filepath.Join(t.TempDir(), "vidyasetu_data.json"), NewLogger())
	require.NoError(t, err)
	return db
}

// NewLogger returns a logger that swallows output.
func NewLogger() core.Logger {
	return logsvc.NewStdLogger(log.New(io.Discard, "", 0))
}

func CreateStudent(t *testing.T, svc *student.Service, roll, first, surname, batch string, course core.Course, semester int, email string) student.Student {
	t.Helper()
	st, err := svc.Create(student.NewStudent{
		RollNumber: roll,
		FirstName:  first,
		Surname:    surname,
		Batch:      batch,
		Course:     course,
		Semester:   semester,
		Gender:     student.GenderFemale,
		Category:   student.CategoryGeneral,
		Email:      email,
	})
	require.NoError(t, err)
	return st
}

func CreateFaculty(t *testing.T, svc *faculty.Service, name, subject, batch string, course core.Course, semester int) faculty.Faculty {
	t.Helper()
	f, err := svc.Create(faculty.NewFaculty{
		Name:     name,
		Subject:  subject,
		Batch:    batch,
		Course:   course,
		Semester: semester,
	})
	require.NoError(t, err)
	return f
}

func CreateLecture(t *testing.T, svc *lecture.Service, batch string, course core.Course, semester int, subject, facultyID string) lecture.Lecture {
	t.Helper()
	l, err := svc.Create(lecture.NewLecture{
		Batch:     batch,
		Course:    course,
		Semester:  semester,
		Subject:   subject,
		FacultyID: facultyID,
		Day:       lecture.Mon,
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	return l
}
