package student

import (
	"strings"

	"github.com/vidyasetu/vidyasetu/core"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Category is the admission category a student was enrolled under.
type Category string

const (
	CategoryGeneral Category = "General"
	CategoryOBC     Category = "OBC"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
)

type Student struct {
	ID         string      `json:"id"`
	RollNumber string      `json:"rollNumber"`
	FirstName  string      `json:"firstName"`
	Surname    string      `json:"surname"`
	FatherName string      `json:"fatherName"`
	Batch      string      `json:"batch"`
	Course     core.Course `json:"course"`
	Semester   int         `json:"semester"`
	DOB        string      `json:"dob"`
	Gender     Gender      `json:"gender"`
	Category   Category    `json:"category"`
	Address    string      `json:"address"`
	Contact    string      `json:"contact"`
	Email      string      `json:"email"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.Surname
}

func (s Student) ClassKey() core.ClassKey {
	return core.ClassKey{Batch: s.Batch, Course: s.Course, Semester: s.Semester}
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	RollNumber string      `json:"rollNumber" validate:"required"`
	FirstName  string      `json:"firstName" validate:"required"`
	Surname    string      `json:"surname" validate:"required"`
	FatherName string      `json:"fatherName"`
	Batch      string      `json:"batch" validate:"required"`
	Course     core.Course `json:"course" validate:"required,oneof=BCA MCA PGCA"`
	Semester   int         `json:"semester" validate:"required,min=1,max=6"`
	DOB        string      `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender     Gender      `json:"gender" validate:"required,oneof=male female other"`
	Category   Category    `json:"category" validate:"required,oneof=General OBC SC ST"`
	Address    string      `json:"address"`
	Contact    string      `json:"contact"`
	Email      string      `json:"email" validate:"omitempty,email"`
}

func (ns *NewStudent) Validate() error {
	ns.RollNumber = core.CleanString(ns.RollNumber)
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.Surname = core.CleanString(ns.Surname)
	ns.FatherName = core.CleanString(ns.FatherName)
	ns.Batch = core.CleanString(ns.Batch)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Zero-valued fields keep their original value.
type UpdateStudent struct {
	RollNumber string      `json:"rollNumber"`
	FirstName  string      `json:"firstName"`
	Surname    string      `json:"surname"`
	FatherName string      `json:"fatherName"`
	Batch      string      `json:"batch"`
	Course     core.Course `json:"course" validate:"omitempty,oneof=BCA MCA PGCA"`
	Semester   int         `json:"semester" validate:"omitempty,min=1,max=6"`
	DOB        string      `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender     Gender      `json:"gender" validate:"omitempty,oneof=male female other"`
	Category   Category    `json:"category" validate:"omitempty,oneof=General OBC SC ST"`
	Address    string      `json:"address"`
	Contact    string      `json:"contact"`
	Email      string      `json:"email" validate:"omitempty,email"`
}

func (us *UpdateStudent) Validate() error {
	us.RollNumber = core.CleanString(us.RollNumber)
	us.FirstName = core.CleanString(us.FirstName)
	us.Surname = core.CleanString(us.Surname)
	us.Email = core.CleanString(us.Email, true /* lower */)
	return core.Validate.Struct(us)
}

// Filter returns the cohort: students exactly matching the class key.
func Filter(students []Student, key core.ClassKey) []Student {
	cohort := make([]Student, 0, len(students))
	for _, s := range students {
		if s.Batch == key.Batch && s.Course == key.Course && s.Semester == key.Semester {
			cohort = append(cohort, s)
		}
	}
	return cohort
}

// DistinctClassKeys returns every (batch, course, semester) triple present,
// in first-occurrence order.
func DistinctClassKeys(students []Student) []core.ClassKey {
	seen := make(map[core.ClassKey]struct{}, len(students))
	keys := make([]core.ClassKey, 0, len(students))
	for _, s := range students {
		key := s.ClassKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// Search does a case-insensitive match on first name, surname or roll number.
func Search(students []Student, query string) []Student {
	query = strings.ToLower(query)
	matched := make([]Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.FirstName), query) ||
			strings.Contains(strings.ToLower(s.Surname), query) ||
			strings.Contains(strings.ToLower(s.RollNumber), query) {
			matched = append(matched, s)
		}
	}
	return matched
}
