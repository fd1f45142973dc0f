// Package document implements the persistence layer: one JSON document on
// disk holding every collection, rewritten in full on each mutation. The
// on-disk field names match existing exported backups exactly.
package document

import (
	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/department"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/student"
)

type Document struct {
	Departments []department.Department `json:"departments"`
	Students    []student.Student       `json:"students"`
	Faculty     []faculty.Faculty       `json:"faculty"`
	Lectures    []lecture.Lecture       `json:"lectures"`
	Attendance  []attendance.Record     `json:"attendance"`
	Marks       []marks.Record          `json:"marks"`
	CurrentUser department.CurrentUser  `json:"currentUser"`
}

// seedDocument is the initial state: one department with no batches, empty
// collections and the default admin user.
func seedDocument() *Document {
	return &Document{
		Departments: []department.Department{
			{
				ID:      "comp-dept",
				Name:    "Computer Department",
				Batches: []department.Batch{},
			},
		},
		Students:   []student.Student{},
		Faculty:    []faculty.Faculty{},
		Lectures:   []lecture.Lecture{},
		Attendance: []attendance.Record{},
		Marks:      []marks.Record{},
		CurrentUser: department.CurrentUser{
			Role:  "admin",
			Name:  "Admin User",
			Email: "admin@vidyasetu.com",
		},
	}
}
