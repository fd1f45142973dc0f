package document

import (
	"github.com/vidyasetu/vidyasetu/core/department"
)

type departmentRepository struct {
	db *DB
}

var _ department.Repository = (*departmentRepository)(nil) // interface compliance check

func NewDepartmentRepository(db *DB) department.Repository {
	return &departmentRepository{db: db}
}

// GetDepartment returns the seeded department. The document always carries
// exactly one.
func (repo *departmentRepository) GetDepartment() (department.Department, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if len(repo.db.doc.Departments) == 0 {
		return department.Department{}, department.ErrNotFound
	}
	return repo.db.doc.Departments[0], nil
}

func (repo *departmentRepository) UpdateDepartment(d department.Department) (department.Department, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if len(repo.db.doc.Departments) == 0 {
		return department.Department{}, department.ErrNotFound
	}
	repo.db.doc.Departments[0] = d
	return d, repo.db.persist()
}

func (repo *departmentRepository) GetCurrentUser() (department.CurrentUser, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.doc.CurrentUser, nil
}

func (repo *departmentRepository) UpdateCurrentUser(u department.CurrentUser) (department.CurrentUser, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.CurrentUser = u
	return u, repo.db.persist()
}
