package student

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidyasetu/vidyasetu/core"
)

func roster() []Student {
	return []Student{
		{ID: "s1", RollNumber: "101", FirstName: "Asha", Surname: "Verma", Batch: "2025", Course: core.CourseBCA, Semester: 1},
		{ID: "s2", RollNumber: "102", FirstName: "Ravi", Surname: "Kumar", Batch: "2025", Course: core.CourseBCA, Semester: 1},
		{ID: "s3", RollNumber: "201", FirstName: "Meena", Surname: "Shah", Batch: "2024", Course: core.CourseMCA, Semester: 3},
	}
}

func Test_Filter(t *testing.T) {
	students := roster()

	cohort := Filter(students, core.ClassKey{Batch: "2025", Course: core.CourseBCA, Semester: 1})
	assert.Len(t, cohort, 2)

	// every component must match exactly
	assert.Empty(t, Filter(students, core.ClassKey{Batch: "2025", Course: core.CourseBCA, Semester: 2}))
	assert.Empty(t, Filter(students, core.ClassKey{Batch: "2025", Course: core.CourseMCA, Semester: 1}))
}

func Test_DistinctClassKeys(t *testing.T) {
	keys := DistinctClassKeys(roster())
	assert.Equal(t, []core.ClassKey{
		{Batch: "2025", Course: core.CourseBCA, Semester: 1},
		{Batch: "2024", Course: core.CourseMCA, Semester: 3},
	}, keys)

	assert.Empty(t, DistinctClassKeys(nil))
}

func Test_Search(t *testing.T) {
	students := roster()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "by first name", query: "asha", want: []string{"s1"}},
		{name: "case insensitive surname", query: "KUMAR", want: []string{"s2"}},
		{name: "by roll number", query: "201", want: []string{"s3"}},
		{name: "substring", query: "10", want: []string{"s1", "s2"}},
		{name: "no match", query: "zzz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := Search(students, tt.query)
			ids := make([]string, 0, len(matched))
			for _, s := range matched {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNewStudent_Validate(t *testing.T) {
	valid := func() NewStudent {
		return NewStudent{
			RollNumber: "101",
			FirstName:  "Asha",
			Surname:    "Verma",
			Batch:      "2025",
			Course:     core.CourseBCA,
			Semester:   1,
			Gender:     GenderFemale,
			Category:   CategoryGeneral,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*NewStudent)
		wantErr bool
	}{
		{name: "valid", mutate: func(*NewStudent) {}},
		{name: "missing roll number", mutate: func(ns *NewStudent) { ns.RollNumber = " " }, wantErr: true},
		{name: "unknown course", mutate: func(ns *NewStudent) { ns.Course = "BSC" }, wantErr: true},
		{name: "semester out of range", mutate: func(ns *NewStudent) { ns.Semester = 7 }, wantErr: true},
		{name: "bad dob", mutate: func(ns *NewStudent) { ns.DOB = "31-12-2004" }, wantErr: true},
		{name: "bad gender", mutate: func(ns *NewStudent) { ns.Gender = "unknown" }, wantErr: true},
		{name: "bad email", mutate: func(ns *NewStudent) { ns.Email = "not-an-email" }, wantErr: true},
		{name: "email lowercased", mutate: func(ns *NewStudent) { ns.Email = "ASHA@Example.COM" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := valid()
			tt.mutate(&ns)
			err := ns.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if ns.Email != "" {
				assert.Equal(t, "asha@example.com", ns.Email)
			}
		})
	}
}
