// Package performance is the derived-metrics engine: pure functions computing
// aggregate statistics from snapshots of the raw collections.
package performance

import (
	"math"

	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/student"
)

// Tier is the coarse classification of a student's average marks.
type Tier string

const (
	TierGood             Tier = "Good"
	TierAverage          Tier = "Average"
	TierNeedsImprovement Tier = "Needs Improvement"
	TierNotAvailable     Tier = "N/A"
)

// AttendanceRate returns the percentage of present records in the student's
// history, rounded to one decimal. A student with no records reads as 0, not
// "N/A", so dashboard aggregation stays numeric.
func AttendanceRate(studentID string, records []attendance.Record) float64 {
	var present, total int
	for _, r := range records {
		if r.StudentID != studentID {
			continue
		}
		total++
		if r.Status == attendance.StatusPresent {
			present++
		}
	}
	if total == 0 {
		return 0
	}
	return round1(float64(present) / float64(total) * 100)
}

// AverageMarks returns the arithmetic mean of the student's marks, rounded to
// one decimal, or 0 with no records.
func AverageMarks(studentID string, records []marks.Record) float64 {
	var sum float64
	var count int
	for _, r := range records {
		if r.StudentID == studentID {
			sum += r.Marks
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round1(sum / float64(count))
}

// Classify buckets a rounded average into a tier. samples is the number of
// mark records behind the average: with none, the tier is NotAvailable, which
// keeps a genuine all-zero average distinguishable from missing data.
func Classify(avg float64, samples int) Tier {
	switch {
	case samples == 0:
		return TierNotAvailable
	case avg >= 75:
		return TierGood
	case avg >= 50:
		return TierAverage
	default:
		return TierNeedsImprovement
	}
}

func IsLowAttendance(rate float64) bool {
	return rate < attendance.LowAttendanceThreshold
}

// AverageAttendance is the dashboard-level rate over every record regardless
// of student, rounded to one decimal.
func AverageAttendance(records []attendance.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	var present int
	for _, r := range records {
		if r.Status == attendance.StatusPresent {
			present++
		}
	}
	return round1(float64(present) / float64(len(records)) * 100)
}

// LowAttendanceCount groups the whole attendance history by student and
// counts those below the threshold.
func LowAttendanceCount(records []attendance.Record) int {
	type ratio struct{ present, total int }
	byStudent := make(map[string]ratio)
	for _, r := range records {
		rt := byStudent[r.StudentID]
		rt.total++
		if r.Status == attendance.StatusPresent {
			rt.present++
		}
		byStudent[r.StudentID] = rt
	}

	var count int
	for _, rt := range byStudent {
		if float64(rt.present)/float64(rt.total)*100 < attendance.LowAttendanceThreshold {
			count++
		}
	}
	return count
}

// StudentReport is one student's derived standing.
type StudentReport struct {
	Student        student.Student `json:"student"`
	AttendanceRate float64         `json:"attendancePercentage"`
	AverageMarks   float64         `json:"avgMarks"`
	Tier           Tier            `json:"performance"`
	LowAttendance  bool            `json:"lowAttendance"`
}

// Report computes the standing of every given student. Attendance and mark
// rows referencing students not in the slice are ignored by construction, so
// records orphaned by a deletion never surface.
func Report(students []student.Student, att []attendance.Record, mks []marks.Record) []StudentReport {
	reports := make([]StudentReport, 0, len(students))
	for _, st := range students {
		rate := AttendanceRate(st.ID, att)
		avg := AverageMarks(st.ID, mks)
		reports = append(reports, StudentReport{
			Student:        st,
			AttendanceRate: rate,
			AverageMarks:   avg,
			Tier:           Classify(avg, len(marks.ForStudent(mks, st.ID))),
			LowAttendance:  IsLowAttendance(rate),
		})
	}
	return reports
}

// round1 rounds half away from zero to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
