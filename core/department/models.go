package department

import (
	"github.com/vidyasetu/vidyasetu/core"
)

type (
	// Department is the administrative unit everything else hangs off.
	// The system seeds exactly one.
	Department struct {
		ID      string  `json:"id"`
		Name    string  `json:"name"`
		Batches []Batch `json:"batches"`
	}

	// Batch is a cohort intake year offering a set of course/semester pairs.
	Batch struct {
		ID      string        `json:"id"`
		Year    string        `json:"year"`
		Courses []BatchCourse `json:"courses"`
	}

	BatchCourse struct {
		Name     core.Course `json:"name"`
		Semester int         `json:"semester"`
	}

	// CurrentUser is the single static interactive user record.
	CurrentUser struct {
		Role  string `json:"role"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)

type NewBatch struct {
	Year    string        `json:"year" validate:"required,len=4,numeric"`
	Courses []BatchCourse `json:"courses" validate:"required,min=1,dive"`
}

func (nb *NewBatch) Validate() error {
	nb.Year = core.CleanString(nb.Year)
	for i := range nb.Courses {
		if !nb.Courses[i].Name.Valid() {
			return core.NewValidationError(errUnknownCourse,
				core.FieldError{Field: "courses", Error: errUnknownCourse.Error()})
		}
		if s := nb.Courses[i].Semester; s < 1 || s > 6 {
			return core.NewValidationError(errBadSemester,
				core.FieldError{Field: "courses", Error: errBadSemester.Error()})
		}
	}
	return core.Validate.Struct(nb)
}

// Settings carries the values editable from the settings screen.
// Empty fields keep their stored value.
type Settings struct {
	DepartmentName string `json:"departmentName"`
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail" validate:"omitempty,email"`
}

func (s *Settings) Validate() error {
	s.DepartmentName = core.CleanString(s.DepartmentName)
	s.UserName = core.CleanString(s.UserName)
	s.UserEmail = core.CleanString(s.UserEmail, true /* lower */)
	return core.Validate.Struct(s)
}
