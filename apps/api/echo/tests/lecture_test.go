package tests

import (
	"net/http"
	"testing"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/faculty"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	testutil "github.com/vidyasetu/vidyasetu/tests"
)

func Test_facultyApi(t *testing.T) {
	a := newApp(t)

	rao := testutil.CreateFaculty(t, a.facultySvc, "Dr. Rao", "Maths", "2025", core.CourseBCA, 1)
	shah := testutil.CreateFaculty(t, a.facultySvc, "Dr. Shah", "Databases", "2024", core.CourseMCA, 3)

	tests := []httpTest{
		{name: "Get all", path: "/v1/faculty", wantCode: http.StatusOK, wantData: marshalList(t, rao, shah)},
		{
			name: "class filter", path: "/v1/faculty?batch=2025&course=BCA&semester=1",
			wantCode: http.StatusOK, wantData: marshalList(t, rao),
		},
		{name: "retrieve", path: "/v1/faculty/" + rao.ID, wantCode: http.StatusOK, wantData: marshalObj(t, rao)},
		{
			name: "retrieve unknown", path: "/v1/faculty/nope",
			wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: faculty.ErrNotFound.Error()}),
		},
		{
			name: "update", method: http.MethodPut, path: "/v1/faculty/" + rao.ID,
			body: marshalObj(t, faculty.UpdateFaculty{Subject: "Statistics"}), wantCode: http.StatusOK,
		},
		{name: "destroy", method: http.MethodDelete, path: "/v1/faculty/" + shah.ID, wantCode: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			a.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_lectureApi(t *testing.T) {
	a := newApp(t)

	fac := testutil.CreateFaculty(t, a.facultySvc, "Dr. Rao", "Maths", "2025", core.CourseBCA, 1)
	maths := testutil.CreateLecture(t, a.lectureSvc, "2025", core.CourseBCA, 1, "Maths", fac.ID)
	dbs := testutil.CreateLecture(t, a.lectureSvc, "2024", core.CourseMCA, 3, "Databases", fac.ID)

	tests := []httpTest{
		{name: "Get all", path: "/v1/lectures", wantCode: http.StatusOK, wantData: marshalList(t, maths, dbs)},
		{
			name: "class filter", path: "/v1/lectures?batch=2024&course=MCA&semester=3",
			wantCode: http.StatusOK, wantData: marshalList(t, dbs),
		},
		{name: "retrieve", path: "/v1/lectures/" + maths.ID, wantCode: http.StatusOK, wantData: marshalObj(t, maths)},
		{
			name: "retrieve unknown", path: "/v1/lectures/nope",
			wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: lecture.ErrNotFound.Error()}),
		},
		{
			name: "create bad time", method: http.MethodPost, path: "/v1/lectures",
			body: marshalObj(t, lecture.NewLecture{
				Batch: "2025", Course: core.CourseBCA, Semester: 1, Subject: "Maths",
				FacultyID: fac.ID, Day: lecture.Mon, StartTime: "9am", EndTime: "10:00",
			}),
			wantCode: http.StatusBadRequest,
		},
		{name: "destroy", method: http.MethodDelete, path: "/v1/lectures/" + dbs.ID, wantCode: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			a.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
