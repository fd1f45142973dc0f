package document

import (
	"github.com/vidyasetu/vidyasetu/core/lecture"
)

type lectureRepository struct {
	db *DB
}

var _ lecture.Repository = (*lectureRepository)(nil) // interface compliance check

func NewLectureRepository(db *DB) lecture.Repository {
	return &lectureRepository{db: db}
}

func (repo *lectureRepository) CreateLecture(l lecture.Lecture) (lecture.Lecture, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Lectures = append(repo.db.doc.Lectures, l)
	return l, repo.db.persist()
}

func (repo *lectureRepository) QueryAllLectures() ([]lecture.Lecture, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	lectures := make([]lecture.Lecture, len(repo.db.doc.Lectures))
	copy(lectures, repo.db.doc.Lectures)
	return lectures, nil
}

func (repo *lectureRepository) GetLectureByID(id string) (lecture.Lecture, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if i := findIndex(repo.db.doc.Lectures, id, lectureID); i >= 0 {
		return repo.db.doc.Lectures[i], nil
	}
	return lecture.Lecture{}, lecture.ErrNotFound
}

func (repo *lectureRepository) UpdateLecture(l lecture.Lecture) (lecture.Lecture, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	partial, err := asPartial(l)
	if err != nil {
		return lecture.Lecture{}, err
	}
	merged, err := mergeByID(repo.db.doc.Lectures, l.ID, lectureID, partial)
	if err == errNotFound {
		return lecture.Lecture{}, lecture.ErrNotFound
	} else if err != nil {
		return lecture.Lecture{}, err
	}
	return merged, repo.db.persist()
}

func (repo *lectureRepository) DeleteLecturesByID(ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Lectures = removeByID(repo.db.doc.Lectures, lectureID, ids...)
	return repo.db.persist()
}

func lectureID(l lecture.Lecture) string { return l.ID }
