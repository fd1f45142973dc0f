package tests

import (
	"net/http"
	"testing"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/department"
)

func Test_departmentApi_retrieve(t *testing.T) {
	a := newApp(t)

	dept, err := a.deptSvc.Get()
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}

	req, rec := newRequest(http.MethodGet, "/v1/department")
	a.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshalObj(t, dept)}, rec)
}

func Test_departmentApi_addBatch(t *testing.T) {
	a := newApp(t)

	body := marshalObj(t, department.NewBatch{
		Year:    "2025",
		Courses: []department.BatchCourse{{Name: core.CourseBCA, Semester: 1}},
	})

	req, rec := newRequest(http.MethodPost, "/v1/department/batches", body)
	a.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusCreated)

	t.Run("duplicate year", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/department/batches", body)
		a.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"year": "a batch with this year already exists"}`),
		}, rec)
	})

	t.Run("bad year", func(t *testing.T) {
		body := marshalObj(t, department.NewBatch{
			Year:    "25",
			Courses: []department.BatchCourse{{Name: core.CourseBCA, Semester: 1}},
		})
		req, rec := newRequest(http.MethodPost, "/v1/department/batches", body)
		a.ServeHTTP(rec, req)
		checkCode(t, rec, http.StatusBadRequest)
	})
}

func Test_departmentApi_settings(t *testing.T) {
	a := newApp(t)

	body := marshalObj(t, department.Settings{DepartmentName: "CS Department", UserName: "Prof. Iyer"})
	req, rec := newRequest(http.MethodPut, "/v1/settings", body)
	a.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusNoContent)

	req, rec = newRequest(http.MethodGet, "/v1/settings")
	a.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marshalObj(t, map[string]interface{}{
			"departmentName": "CS Department",
			"currentUser": department.CurrentUser{
				Role:  "admin",
				Name:  "Prof. Iyer",
				Email: "admin@vidyasetu.com",
			},
		}),
	}, rec)
}
