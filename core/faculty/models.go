package faculty

import (
	"github.com/vidyasetu/vidyasetu/core"
)

// Faculty is a teaching staff member assigned to a subject for one class.
type Faculty struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Subject  string      `json:"subject"`
	Batch    string      `json:"batch"`
	Course   core.Course `json:"course"`
	Semester int         `json:"semester"`
	Contact  string      `json:"contact"`
	Email    string      `json:"email"`
}

func (f Faculty) ClassKey() core.ClassKey {
	return core.ClassKey{Batch: f.Batch, Course: f.Course, Semester: f.Semester}
}

type NewFaculty struct {
	Name     string      `json:"name" validate:"required"`
	Subject  string      `json:"subject" validate:"required"`
	Batch    string      `json:"batch" validate:"required"`
	Course   core.Course `json:"course" validate:"required,oneof=BCA MCA PGCA"`
	Semester int         `json:"semester" validate:"required,min=1,max=6"`
	Contact  string      `json:"contact"`
	Email    string      `json:"email" validate:"omitempty,email"`
}

func (nf *NewFaculty) Validate() error {
	nf.Name = core.CleanString(nf.Name)
	nf.Subject = core.CleanString(nf.Subject)
	nf.Batch = core.CleanString(nf.Batch)
	nf.Email = core.CleanString(nf.Email, true /* lower */)
	return core.Validate.Struct(nf)
}

// UpdateFaculty defines what may be modified on an existing Faculty.
// Zero-valued fields keep their original value.
type UpdateFaculty struct {
	Name     string      `json:"name"`
	Subject  string      `json:"subject"`
	Batch    string      `json:"batch"`
	Course   core.Course `json:"course" validate:"omitempty,oneof=BCA MCA PGCA"`
	Semester int         `json:"semester" validate:"omitempty,min=1,max=6"`
	Contact  string      `json:"contact"`
	Email    string      `json:"email" validate:"omitempty,email"`
}

func (uf *UpdateFaculty) Validate() error {
	uf.Name = core.CleanString(uf.Name)
	uf.Subject = core.CleanString(uf.Subject)
	uf.Email = core.CleanString(uf.Email, true /* lower */)
	return core.Validate.Struct(uf)
}
