package document

import (
	"github.com/vidyasetu/vidyasetu/core/faculty"
)

type facultyRepository struct {
	db *DB
}

var _ faculty.Repository = (*facultyRepository)(nil) // interface compliance check

func NewFacultyRepository(db *DB) faculty.Repository {
	return &facultyRepository{db: db}
}

func (repo *facultyRepository) CreateFaculty(f faculty.Faculty) (faculty.Faculty, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Faculty = append(repo.db.doc.Faculty, f)
	return f, repo.db.persist()
}

func (repo *facultyRepository) QueryAllFaculty() ([]faculty.Faculty, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	members := make([]faculty.Faculty, len(repo.db.doc.Faculty))
	copy(members, repo.db.doc.Faculty)
	return members, nil
}

func (repo *facultyRepository) GetFacultyByID(id string) (faculty.Faculty, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if i := findIndex(repo.db.doc.Faculty, id, facultyID); i >= 0 {
		return repo.db.doc.Faculty[i], nil
	}
	return faculty.Faculty{}, faculty.ErrNotFound
}

func (repo *facultyRepository) UpdateFaculty(f faculty.Faculty) (faculty.Faculty, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	partial, err := asPartial(f)
	if err != nil {
		return faculty.Faculty{}, err
	}
	merged, err := mergeByID(repo.db.doc.Faculty, f.ID, facultyID, partial)
	if err == errNotFound {
		return faculty.Faculty{}, faculty.ErrNotFound
	} else if err != nil {
		return faculty.Faculty{}, err
	}
	return merged, repo.db.persist()
}

func (repo *facultyRepository) DeleteFacultyByID(ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Faculty = removeByID(repo.db.doc.Faculty, facultyID, ids...)
	return repo.db.persist()
}

func facultyID(f faculty.Faculty) string { return f.ID }
