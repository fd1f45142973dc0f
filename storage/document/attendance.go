package document

import (
	"github.com/vidyasetu/vidyasetu/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// AddRecords appends the whole sheet in a single document write.
func (repo *attendanceRepository) AddRecords(records ...attendance.Record) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.doc.Attendance = append(repo.db.doc.Attendance, records...)
	return repo.db.persist()
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	records := make([]attendance.Record, len(repo.db.doc.Attendance))
	copy(records, repo.db.doc.Attendance)
	return records, nil
}
