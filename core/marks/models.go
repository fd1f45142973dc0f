package marks

import (
	"math"

	"github.com/vidyasetu/vidyasetu/core"
)

// MaxMarks is the fixed denominator every mark is recorded against.
const MaxMarks = 100

// Record is one student's score in one subject out of MaxMarks.
type Record struct {
	ID        string      `json:"id"`
	StudentID string      `json:"studentId"`
	Batch     string      `json:"batch"`
	Course    core.Course `json:"course"`
	Semester  int         `json:"semester"`
	Subject   string      `json:"subject"`
	Marks     float64     `json:"marks"`
	MaxMarks  int         `json:"maxMarks"`
	Date      string      `json:"date"`
}

// Sheet is one subject's worth of marks to record for a class.
type Sheet struct {
	Class   core.ClassKey      `json:"class"`
	Subject string             `json:"subject" validate:"required"`
	Entries map[string]float64 `json:"entries" validate:"required,min=1"`
}

func (sh *Sheet) Validate() error {
	sh.Subject = core.CleanString(sh.Subject)
	return core.Validate.Struct(sh)
}

// ValidMarks reports whether a raw marks value may be recorded at all.
// Out-of-range and NaN values are refused outright, never clamped.
func ValidMarks(value float64) bool {
	return !math.IsNaN(value) && value >= 0 && value <= MaxMarks
}

// ForStudent filters records down to one student's marks.
func ForStudent(records []Record, studentID string) []Record {
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if r.StudentID == studentID {
			matched = append(matched, r)
		}
	}
	return matched
}
