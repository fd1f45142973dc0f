package document

import (
	"github.com/vidyasetu/vidyasetu/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(st student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Students = append(repo.db.doc.Students, st)
	return st, repo.db.persist()
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	students := make([]student.Student, len(repo.db.doc.Students))
	copy(students, repo.db.doc.Students)
	return students, nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if i := findIndex(repo.db.doc.Students, id, studentID); i >= 0 {
		return repo.db.doc.Students[i], nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(st student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	partial, err := asPartial(st)
	if err != nil {
		return student.Student{}, err
	}
	merged, err := mergeByID(repo.db.doc.Students, st.ID, studentID, partial)
	if err == errNotFound {
		return student.Student{}, student.ErrNotFound
	} else if err != nil {
		return student.Student{}, err
	}
	return merged, repo.db.persist()
}

func (repo *studentRepository) DeleteStudentsByID(ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Students = removeByID(repo.db.doc.Students, studentID, ids...)
	return repo.db.persist()
}

func studentID(st student.Student) string { return st.ID }
