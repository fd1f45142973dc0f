package marks

import (
	"errors"
	"time"

	"github.com/vidyasetu/vidyasetu/core"
)

var ErrNotFound = errors.New("mark record not found")

type (
	Repository interface {
		AddMark(m Record) (Record, error)
		QueryAllMarks() ([]Record, error)
		UpdateMark(m Record) (Record, error)
	}

	Service struct {
		repo Repository
		now  func() time.Time // mockable
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllMarks()
}

func (svc *Service) ByStudent(studentID string) ([]Record, error) {
	records, err := svc.repo.QueryAllMarks()
	if err != nil {
		return nil, err
	}
	return ForStudent(records, studentID), nil
}

// SaveSheet records marks for one class and subject. A second save for the
// same (student, subject) pair overwrites the earlier record instead of
// duplicating it. Entries outside [0,100] are skipped entirely; no record is
// created or changed for them.
func (svc *Service) SaveSheet(sh Sheet) ([]Record, error) {
	existing, err := svc.repo.QueryAllMarks()
	if err != nil {
		return nil, err
	}

	date := svc.now().Format("2006-01-02")
	saved := make([]Record, 0, len(sh.Entries))
	for studentID, value := range sh.Entries {
		if !ValidMarks(value) {
			continue
		}

		rec := Record{
			ID:        core.NewID(),
			StudentID: studentID,
			Batch:     sh.Class.Batch,
			Course:    sh.Class.Course,
			Semester:  sh.Class.Semester,
			Subject:   sh.Subject,
			Marks:     value,
			MaxMarks:  MaxMarks,
			Date:      date,
		}

		if prev, ok := find(existing, studentID, sh.Subject); ok {
			rec.ID = prev.ID
			rec, err = svc.repo.UpdateMark(rec)
		} else {
			rec, err = svc.repo.AddMark(rec)
		}
		if err != nil {
			return nil, err
		}
		saved = append(saved, rec)
	}
	return saved, nil
}

func find(records []Record, studentID, subject string) (Record, bool) {
	for _, r := range records {
		if r.StudentID == studentID && r.Subject == subject {
			return r, true
		}
	}
	return Record{}, false
}
