package document

import (
	"github.com/vidyasetu/vidyasetu/core/marks"
)

type markRepository struct {
	db *DB
}

var _ marks.Repository = (*markRepository)(nil) // interface compliance check

func NewMarkRepository(db *DB) marks.Repository {
	return &markRepository{db: db}
}

func (repo *markRepository) AddMark(m marks.Record) (marks.Record, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Marks = append(repo.db.doc.Marks, m)
	return m, repo.db.persist()
}

func (repo *markRepository) QueryAllMarks() ([]marks.Record, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	records := make([]marks.Record, len(repo.db.doc.Marks))
	copy(records, repo.db.doc.Marks)
	return records, nil
}

func (repo *markRepository) UpdateMark(m marks.Record) (marks.Record, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	partial, err := asPartial(m)
	if err != nil {
		return marks.Record{}, err
	}
	merged, err := mergeByID(repo.db.doc.Marks, m.ID, markID, partial)
	if err == errNotFound {
		return marks.Record{}, marks.ErrNotFound
	} else if err != nil {
		return marks.Record{}, err
	}
	return merged, repo.db.persist()
}

func markID(m marks.Record) string { return m.ID }
