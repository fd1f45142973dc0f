package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/student"
	emailsvc "github.com/vidyasetu/vidyasetu/services/email"
	"github.com/vidyasetu/vidyasetu/storage/document"
	testutil "github.com/vidyasetu/vidyasetu/tests"
)

type fixture struct {
	svc        *attendance.Service
	studentSvc *student.Service
	lectureSvc *lecture.Service
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.OpenDB(t)

	studentSvc := student.NewService(document.NewStudentRepository(db))
	facultySvc := faculty.NewService(document.NewFacultyRepository(db))
	lectureSvc := lecture.NewService(document.NewLectureRepository(db))

	fac := testutil.CreateFaculty(t, facultySvc, "Dr. Rao", "Maths", "2025", core.CourseBCA, 1)
	testutil.CreateLecture(t, lectureSvc, "2025", core.CourseBCA, 1, "Maths", fac.ID)

	emailsvc.ClearSentMessages()
	svc := attendance.NewService(
		document.NewAttendanceRepository(db), lectureSvc, studentSvc, emailsvc.NewConsoleServiceMock())
	return fixture{svc: svc, studentSvc: studentSvc, lectureSvc: lectureSvc}
}

func (f fixture) lectureID(t *testing.T) string {
	t.Helper()
	lects, err := f.lectureSvc.QueryAll()
	require.NoError(t, err)
	require.NotEmpty(t, lects)
	return lects[0].ID
}

func TestService_SaveSheet_denormalizesLecture(t *testing.T) {
	f := setup(t)

	records, err := f.svc.SaveSheet(attendance.Sheet{
		LectureID: f.lectureID(t),
		Date:      "2026-08-20",
		Statuses: map[string]attendance.Status{
			"s1": attendance.StatusPresent,
			"s2": attendance.StatusAbsent,
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, r := range records {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "2025", r.Batch)
		assert.Equal(t, core.CourseBCA, r.Course)
		assert.Equal(t, 1, r.Semester)
		assert.Equal(t, "Maths", r.Subject)
		assert.Equal(t, "2026-08-20", r.Date)
	}

	all, err := f.svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_SaveSheet_unknownLecture(t *testing.T) {
	f := setup(t)

	_, err := f.svc.SaveSheet(attendance.Sheet{
		LectureID: "nope",
		Date:      "2026-08-20",
		Statuses:  map[string]attendance.Status{"s1": attendance.StatusPresent},
	})
	assert.ErrorIs(t, err, attendance.ErrLectureNotFound)
}

func TestService_SaveSheet_mailsNewlyLowStudents(t *testing.T) {
	f := setup(t)
	lectID := f.lectureID(t)

	st := testutil.CreateStudent(t, f.studentSvc, "101", "Asha", "Verma", "2025", core.CourseBCA, 1, "asha@example.com")
	noMail := testutil.CreateStudent(t, f.studentSvc, "102", "Ravi", "Kumar", "2025", core.CourseBCA, 1, "")

	save := func(date string, status attendance.Status) {
		t.Helper()
		_, err := f.svc.SaveSheet(attendance.Sheet{
			LectureID: lectID,
			Date:      date,
			Statuses: map[string]attendance.Status{
				st.ID:     status,
				noMail.ID: status,
			},
		})
		require.NoError(t, err)
	}

	// first absence drops both to 0%; only the student with an email is mailed
	save("2026-08-20", attendance.StatusAbsent)
	sent := emailsvc.GetSentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "Low attendance warning", sent[0].Subject)
	require.Len(t, sent[0].To, 1)
	assert.Equal(t, st.Email, sent[0].To[0].Address)
	assert.Contains(t, sent[0].Body, "Asha Verma")

	// still low on the next sheet; no repeat mail
	save("2026-08-21", attendance.StatusAbsent)
	assert.Len(t, emailsvc.GetSentMessages(), 1)
}

func TestService_ByStudent(t *testing.T) {
	f := setup(t)

	_, err := f.svc.SaveSheet(attendance.Sheet{
		LectureID: f.lectureID(t),
		Date:      "2026-08-20",
		Statuses: map[string]attendance.Status{
			"s1": attendance.StatusPresent,
			"s2": attendance.StatusAbsent,
		},
	})
	require.NoError(t, err)

	recs, err := f.svc.ByStudent("s1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, attendance.StatusPresent, recs[0].Status)
}

func TestSheet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sheet   attendance.Sheet
		wantErr bool
	}{
		{
			name:  "valid",
			sheet: attendance.Sheet{LectureID: "l1", Date: "2026-08-20", Statuses: map[string]attendance.Status{"s1": attendance.StatusPresent}},
		},
		{
			name:    "bad date",
			sheet:   attendance.Sheet{LectureID: "l1", Date: "20/08/2026", Statuses: map[string]attendance.Status{"s1": attendance.StatusPresent}},
			wantErr: true,
		},
		{
			name:    "unknown status",
			sheet:   attendance.Sheet{LectureID: "l1", Date: "2026-08-20", Statuses: map[string]attendance.Status{"s1": "late"}},
			wantErr: true,
		},
		{
			name:    "no statuses",
			sheet:   attendance.Sheet{LectureID: "l1", Date: "2026-08-20", Statuses: map[string]attendance.Status{}},
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
