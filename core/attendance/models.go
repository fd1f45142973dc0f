package attendance

import (
	"github.com/vidyasetu/vidyasetu/core"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Record is one student's attendance for one lecture on one date. The class
// fields are denormalized from the lecture at save time. StudentID and
// LectureID are not enforced references; reads must tolerate missing rows.
type Record struct {
	ID        string      `json:"id"`
	StudentID string      `json:"studentId"`
	LectureID string      `json:"lectureId"`
	Batch     string      `json:"batch"`
	Course    core.Course `json:"course"`
	Semester  int         `json:"semester"`
	Subject   string      `json:"subject"`
	Date      string      `json:"date"`
	Status    Status      `json:"status"`
}

// Sheet is one class session's worth of attendance to record: a status per
// student for a lecture on a date.
type Sheet struct {
	LectureID string            `json:"lectureId" validate:"required"`
	Date      string            `json:"date" validate:"required,datetime=2006-01-02"`
	Statuses  map[string]Status `json:"statuses" validate:"required,min=1,dive,oneof=present absent"`
}

func (sh *Sheet) Validate() error {
	return core.Validate.Struct(sh)
}
