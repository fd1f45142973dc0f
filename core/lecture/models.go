package lecture

import (
	"github.com/vidyasetu/vidyasetu/core"
)

// Day is a teaching day of the week. The college runs Monday through Saturday.
type Day string

const (
	Mon Day = "Mon"
	Tue Day = "Tue"
	Wed Day = "Wed"
	Thu Day = "Thu"
	Fri Day = "Fri"
	Sat Day = "Sat"
)

var AllDays = []Day{Mon, Tue, Wed, Thu, Fri, Sat}

// Lecture is a weekly scheduled teaching slot for one class and subject.
// FacultyID references a Faculty record; the link is not enforced and reads
// must tolerate a missing member.
type Lecture struct {
	ID        string      `json:"id"`
	Batch     string      `json:"batch"`
	Course    core.Course `json:"course"`
	Semester  int         `json:"semester"`
	Subject   string      `json:"subject"`
	FacultyID string      `json:"facultyId"`
	Day       Day         `json:"day"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
}

func (l Lecture) ClassKey() core.ClassKey {
	return core.ClassKey{Batch: l.Batch, Course: l.Course, Semester: l.Semester}
}

type NewLecture struct {
	Batch     string      `json:"batch" validate:"required"`
	Course    core.Course `json:"course" validate:"required,oneof=BCA MCA PGCA"`
	Semester  int         `json:"semester" validate:"required,min=1,max=6"`
	Subject   string      `json:"subject" validate:"required"`
	FacultyID string      `json:"facultyId" validate:"required"`
	Day       Day         `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat"`
	StartTime string      `json:"startTime" validate:"required,timehhmm"`
	EndTime   string      `json:"endTime" validate:"required,timehhmm"`
}

func (nl *NewLecture) Validate() error {
	nl.Batch = core.CleanString(nl.Batch)
	nl.Subject = core.CleanString(nl.Subject)
	return core.Validate.Struct(nl)
}

// UpdateLecture defines what may be modified on an existing Lecture.
// Zero-valued fields keep their original value.
type UpdateLecture struct {
	Batch     string      `json:"batch"`
	Course    core.Course `json:"course" validate:"omitempty,oneof=BCA MCA PGCA"`
	Semester  int         `json:"semester" validate:"omitempty,min=1,max=6"`
	Subject   string      `json:"subject"`
	FacultyID string      `json:"facultyId"`
	Day       Day         `json:"day" validate:"omitempty,oneof=Mon Tue Wed Thu Fri Sat"`
	StartTime string      `json:"startTime" validate:"omitempty,timehhmm"`
	EndTime   string      `json:"endTime" validate:"omitempty,timehhmm"`
}

func (ul *UpdateLecture) Validate() error {
	ul.Batch = core.CleanString(ul.Batch)
	ul.Subject = core.CleanString(ul.Subject)
	return core.Validate.Struct(ul)
}
