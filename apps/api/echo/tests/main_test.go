package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/attendance"
	"github.com/vidyasetu/vidyasetu/core/department"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/marks"
	"github.com/vidyasetu/vidyasetu/core/student"
	emailsvc "github.com/vidyasetu/vidyasetu/services/email"
	"github.com/vidyasetu/vidyasetu/storage/document"
	testutil "github.com/vidyasetu/vidyasetu/tests"

	echoapi "github.com/vidyasetu/vidyasetu/apps/api/echo"
)

func TestMain(m *testing.M) {
	// deterministic error payloads
	core.Conf.Set("debug", false)
	core.Conf.Set("testMode", true)

	os.Exit(m.Run())
}

// app bundles a server over a fresh store with the services tests seed through.
type app struct {
	http.Handler

	db            *document.DB
	deptSvc       *department.Service
	studentSvc    *student.Service
	facultySvc    *faculty.Service
	lectureSvc    *lecture.Service
	attendanceSvc *attendance.Service
	markSvc       *marks.Service
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := testutil.OpenDB(t)

	deptSvc := department.NewService(document.NewDepartmentRepository(db))
	studentSvc := student.NewService(document.NewStudentRepository(db))
	facultySvc := faculty.NewService(document.NewFacultyRepository(db))
	lectureSvc := lecture.NewService(document.NewLectureRepository(db))
	attendanceSvc := attendance.NewService(
		document.NewAttendanceRepository(db), lectureSvc, studentSvc, emailsvc.NewConsoleServiceMock())
	markSvc := marks.NewService(document.NewMarkRepository(db))

	srv := echoapi.NewServer(&echoapi.Options{
		DisableReqLogs: true,
		Logger:         testutil.NewLogger(),
		DB:             db,
		DeptSvc:        deptSvc,
		StudentSvc:     studentSvc,
		FacultySvc:     facultySvc,
		LectureSvc:     lectureSvc,
		AttendanceSvc:  attendanceSvc,
		MarkSvc:        markSvc,
	})

	return &app{
		Handler:       srv,
		db:            db,
		deptSvc:       deptSvc,
		studentSvc:    studentSvc,
		facultySvc:    facultySvc,
		lectureSvc:    lectureSvc,
		attendanceSvc: attendanceSvc,
		markSvc:       markSvc,
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj(): %v", err)
	}
	return data
}

func marshalList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marshalList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func checkCode(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("failed! code = %v; want %v; body %s", rec.Code, want, rec.Body.String())
	}
}
