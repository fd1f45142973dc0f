package student

import (
	"errors"

	"github.com/vidyasetu/vidyasetu/core"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(st Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// UpdateStudent replaces the stored fields of the student matching st.ID.
		UpdateStudent(st Student) (Student, error)
		DeleteStudentsByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	st := Student{
		ID:         core.NewID(),
		RollNumber: ns.RollNumber,
		FirstName:  ns.FirstName,
		Surname:    ns.Surname,
		FatherName: ns.FatherName,
		Batch:      ns.Batch,
		Course:     ns.Course,
		Semester:   ns.Semester,
		DOB:        ns.DOB,
		Gender:     ns.Gender,
		Category:   ns.Category,
		Address:    ns.Address,
		Contact:    ns.Contact,
		Email:      ns.Email,
	}
	return svc.repo.CreateStudent(st)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Search(query string) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return Search(students, core.CleanString(query)), nil
}

func (svc *Service) Cohort(key core.ClassKey) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return Filter(students, key), nil
}

func (svc *Service) ClassKeys() ([]core.ClassKey, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return DistinctClassKeys(students), nil
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	orig, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}

	st := orig
	if us.RollNumber != "" {
		st.RollNumber = us.RollNumber
	}
	if us.FirstName != "" {
		st.FirstName = us.FirstName
	}
	if us.Surname != "" {
		st.Surname = us.Surname
	}
	if us.FatherName != "" {
		st.FatherName = us.FatherName
	}
	if us.Batch != "" {
		st.Batch = us.Batch
	}
	if us.Course != "" {
		st.Course = us.Course
	}
	if us.Semester != 0 {
		st.Semester = us.Semester
	}
	if us.DOB != "" {
		st.DOB = us.DOB
	}
	if us.Gender != "" {
		st.Gender = us.Gender
	}
	if us.Category != "" {
		st.Category = us.Category
	}
	if us.Address != "" {
		st.Address = us.Address
	}
	if us.Contact != "" {
		st.Contact = us.Contact
	}
	if us.Email != "" {
		st.Email = us.Email
	}
	return svc.repo.UpdateStudent(st)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteStudentsByID(ids...)
}
