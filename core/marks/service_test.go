package marks_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/storage/document"
	testutil "github.com/vidyasetu/vidyasetu/tests"
)

func newService(t *testing.T) *marks.Service {
	t.Helper()
	db := testutil.OpenDB(t)
	return marks.NewService(document.NewMarkRepository(db))
}

func classKey() core.ClassKey {
	return core.ClassKey{Batch: "2025", Course: core.CourseBCA, Semester: 1}
}

func TestService_SaveSheet_skipsInvalidEntries(t *testing.T) {
	svc := newService(t)

	saved, err := svc.SaveSheet(marks.Sheet{
		Class:   classKey(),
		Subject: "Maths",
		Entries: map[string]float64{
			"s1": 80,
			"s2": -5,
			"s3": 101,
			"s4": math.NaN(),
			"s5": 0,
			"s6": 100,
		},
	})
	require.NoError(t, err)
	assert.Len(t, saved, 3)

	all, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, all, 3)

	byStudent := make(map[string]marks.Record, len(all))
	for _, r := range all {
		byStudent[r.StudentID] = r
	}
	assert.Contains(t, byStudent, "s1")
	assert.Contains(t, byStudent, "s5")
	assert.Contains(t, byStudent, "s6")
	assert.NotContains(t, byStudent, "s2")
	assert.NotContains(t, byStudent, "s3")
	assert.NotContains(t, byStudent, "s4")

	rec := byStudent["s1"]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "2025", rec.Batch)
	assert.Equal(t, core.CourseBCA, rec.Course)
	assert.Equal(t, 1, rec.Semester)
	assert.Equal(t, "Maths", rec.Subject)
	assert.Equal(t, marks.MaxMarks, rec.MaxMarks)
	assert.Equal(t, time.Now().Format("2006-01-02"), rec.Date)
}

func TestService_SaveSheet_upsertsBySubject(t *testing.T) {
	svc := newService(t)

	first, err := svc.SaveSheet(marks.Sheet{
		Class:   classKey(),
		Subject: "Maths",
		Entries: map[string]float64{"s1": 40},
	})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// second save for the same (student, subject) overwrites the record
	second, err := svc.SaveSheet(marks.Sheet{
		Class:   classKey(),
		Subject: "Maths",
		Entries: map[string]float64{"s1": 90},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)

	// a different subject is a new record
	_, err = svc.SaveSheet(marks.Sheet{
		Class:   classKey(),
		Subject: "Physics",
		Entries: map[string]float64{"s1": 55},
	})
	require.NoError(t, err)

	all, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, all, 2)

	bySubject := make(map[string]float64, len(all))
	for _, r := range all {
		bySubject[r.Subject] = r.Marks
	}
	assert.Equal(t, 90.0, bySubject["Maths"])
	assert.Equal(t, 55.0, bySubject["Physics"])
}

func TestService_ByStudent(t *testing.T) {
	svc := newService(t)

	_, err := svc.SaveSheet(marks.Sheet{
		Class:   classKey(),
		Subject: "Maths",
		Entries: map[string]float64{"s1": 80, "s2": 60},
	})
	require.NoError(t, err)

	recs, err := svc.ByStudent("s1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 80.0, recs[0].Marks)

	recs, err = svc.ByStudent("nobody")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSheet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sheet   marks.Sheet
		wantErr bool
	}{
		{
			name:  "valid",
			sheet: marks.Sheet{Class: classKey(), Subject: "Maths", Entries: map[string]float64{"s1": 50}},
		},
		{
			name:    "missing subject",
			sheet:   marks.Sheet{Class: classKey(), Entries: map[string]float64{"s1": 50}},
			wantErr: true,
		},
		{
			name:    "empty entries",
			sheet:   marks.Sheet{Class: classKey(), Subject: "Maths", Entries: map[string]float64{}},
			wantErr: true,
		},
		{
			name:    "zero class",
			sheet:   marks.Sheet{Subject: "Maths", Entries: map[string]float64{"s1": 50}},
			wantErr: true,
		},
		{
			name: "unknown course",
			sheet: marks.Sheet{
				Class:   core.ClassKey{Batch: "2025", Course: "BSC", Semester: 1},
				Subject: "Maths",
				Entries: map[string]float64{"s1": 50},
			},
			wantErr: true,
		},
		{
			name: "semester out of range",
			sheet: marks.Sheet{
				Class:   core.ClassKey{Batch: "2025", Course: core.CourseBCA, Semester: 7},
				Subject: "Maths",
				Entries: map[string]float64{"s1": 50},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sheet.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
