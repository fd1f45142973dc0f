package department

import (
	"errors"

	"github.com/vidyasetu/vidyasetu/core"
)

var (
	ErrNotFound        = errors.New("department not found")
	ErrBatchYearExists = errors.New("a batch with this year already exists")

	errUnknownCourse = errors.New("unknown course")
	errBadSemester   = errors.New("semester must be between 1 and 6")
)

type (
	Repository interface {
		GetDepartment() (Department, error)
		UpdateDepartment(d Department) (Department, error)
		GetCurrentUser() (CurrentUser, error)
		UpdateCurrentUser(u CurrentUser) (CurrentUser, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get() (Department, error) {
	return svc.repo.GetDepartment()
}

func (svc *Service) CurrentUser() (CurrentUser, error) {
	return svc.repo.GetCurrentUser()
}

// AddBatch appends a new intake year to the department. The year must be
// unique within the department; the document is left unchanged otherwise.
func (svc *Service) AddBatch(nb NewBatch) (Batch, error) {
	dept, err := svc.repo.GetDepartment()
	if err != nil {
		return Batch{}, err
	}

	for _, b := range dept.Batches {
		if b.Year == nb.Year {
			return Batch{}, core.NewValidationError(ErrBatchYearExists,
				core.FieldError{Field: "year", Error: ErrBatchYearExists.Error()})
		}
	}

	batch := Batch{
		ID:      core.NewID(),
		Year:    nb.Year,
		Courses: nb.Courses,
	}
	dept.Batches = append(dept.Batches, batch)
	if _, err = svc.repo.UpdateDepartment(dept); err != nil {
		return Batch{}, err
	}
	return batch, nil
}

// UpdateSettings applies the settings screen: department name and the current
// user's name and email.
func (svc *Service) UpdateSettings(s Settings) error {
	if s.DepartmentName != "" {
		dept, err := svc.repo.GetDepartment()
		if err != nil {
			return err
		}
		dept.Name = s.DepartmentName
		if _, err = svc.repo.UpdateDepartment(dept); err != nil {
			return err
		}
	}

	if s.UserName == "" && s.UserEmail == "" {
		return nil
	}
	usr, err := svc.repo.GetCurrentUser()
	if err != nil {
		return err
	}
	if s.UserName != "" {
		usr.Name = s.UserName
	}
	if s.UserEmail != "" {
		usr.Email = s.UserEmail
	}
	_, err = svc.repo.UpdateCurrentUser(usr)
	return err
}
