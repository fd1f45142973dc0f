package faculty

import (
	"errors"

	"github.com/vidyasetu/vidyasetu/core"
)

var ErrNotFound = errors.New("faculty member not found")

type (
	Repository interface {
		CreateFaculty(f Faculty) (Faculty, error)
		QueryAllFaculty() ([]Faculty, error)
		GetFacultyByID(id string) (Faculty, error)
		UpdateFaculty(f Faculty) (Faculty, error)
		DeleteFacultyByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nf NewFaculty) (Faculty, error) {
	return svc.repo.CreateFaculty(Faculty{
		ID:       core.NewID(),
		Name:     nf.Name,
		Subject:  nf.Subject,
		Batch:    nf.Batch,
		Course:   nf.Course,
		Semester: nf.Semester,
		Contact:  nf.Contact,
		Email:    nf.Email,
	})
}

func (svc *Service) QueryAll() ([]Faculty, error) {
	return svc.repo.QueryAllFaculty()
}

func (svc *Service) GetByID(id string) (Faculty, error) {
	return svc.repo.GetFacultyByID(id)
}

func (svc *Service) ForClass(key core.ClassKey) ([]Faculty, error) {
	members, err := svc.repo.QueryAllFaculty()
	if err != nil {
		return nil, err
	}
	matched := make([]Faculty, 0, len(members))
	for _, f := range members {
		if f.ClassKey() == key {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

func (svc *Service) Update(id string, uf UpdateFaculty) (Faculty, error) {
	orig, err := svc.repo.GetFacultyByID(id)
	if err != nil {
		return Faculty{}, err
	}

	f := orig
	if uf.Name != "" {
		f.Name = uf.Name
	}
	if uf.Subject != "" {
		f.Subject = uf.Subject
	}
	if uf.Batch != "" {
		f.Batch = uf.Batch
	}
	if uf.Course != "" {
		f.Course = uf.Course
	}
	if uf.Semester != 0 {
		f.Semester = uf.Semester
	}
	if uf.Contact != "" {
		f.Contact = uf.Contact
	}
	if uf.Email != "" {
		f.Email = uf.Email
	}
	return svc.repo.UpdateFaculty(f)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteFacultyByID(ids...)
}
