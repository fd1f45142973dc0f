package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Course is one of the degree programmes offered by a department.
type Course string

const (
	CourseBCA  Course = "BCA"
	CourseMCA  Course = "MCA"
	CoursePGCA Course = "PGCA"
)

var AllCourses = []Course{CourseBCA, CourseMCA, CoursePGCA}

func (c Course) Valid() bool {
	switch c {
	case CourseBCA, CourseMCA, CoursePGCA:
		return true
	}
	return false
}

func (c Course) String() string { return string(c) }

// ClassKey identifies a cohort: the students sharing batch, course and
// semester. The tags only apply where a key is validated as part of a payload;
// query-bound keys stay optional.
type ClassKey struct {
	Batch    string `json:"batch" query:"batch" validate:"required"`
	Course   Course `json:"course" query:"course" validate:"required,oneof=BCA MCA PGCA"`
	Semester int    `json:"semester" query:"semester" validate:"required,min=1,max=6"`
}

// String renders the "<batch>-<course>-<semester>" form the class selection
// controls exchange, e.g. "2025-BCA-1".
func (k ClassKey) String() string {
	return fmt.Sprintf("%s-%s-%d", k.Batch, k.Course, k.Semester)
}

func (k ClassKey) IsZero() bool {
	return k.Batch == "" && k.Course == "" && k.Semester == 0
}

func ParseClassKey(s string) (ClassKey, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return ClassKey{}, errors.Errorf("malformed class key %q", s)
	}
	sem, err := strconv.Atoi(parts[2])
	if err != nil {
		return ClassKey{}, errors.Wrapf(err, "malformed class key %q", s)
	}
	return ClassKey{Batch: parts[0], Course: Course(parts[1]), Semester: sem}, nil
}
