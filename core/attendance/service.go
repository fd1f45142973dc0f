package attendance

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/vidyasetu/vidyasetu/core"
	"github.com/vidyasetu/vidyasetu/core/lecture"
	"github.com/vidyasetu/vidyasetu/core/student"
)

// LowAttendanceThreshold is the percentage below which a student is flagged.
const LowAttendanceThreshold = 75.0

var ErrLectureNotFound = errors.New("lecture not found")

type (
	Repository interface {
		AddRecords(records ...Record) error
		QueryAllRecords() ([]Record, error)
	}

	// LectureGetter resolves the lecture a sheet is recorded against.
	LectureGetter interface {
		GetByID(id string) (lecture.Lecture, error)
	}

	// StudentGetter resolves students for low-attendance warning mails.
	StudentGetter interface {
		GetByID(id string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		lectures LectureGetter
		students StudentGetter
		mailSvc  core.EmailService
	}
)

func NewService(repo Repository, lectures LectureGetter, students StudentGetter, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, lectures: lectures, students: students, mailSvc: mailSvc}
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

func (svc *Service) ByStudent(studentID string) ([]Record, error) {
	records, err := svc.repo.QueryAllRecords()
	if err != nil {
		return nil, err
	}
	return ForStudent(records, studentID), nil
}

// SaveSheet records one attendance row per student in the sheet, denormalizing
// the lecture's class fields into each record. Students whose attendance drops
// below the threshold as a result get a warning mail.
func (svc *Service) SaveSheet(sh Sheet) ([]Record, error) {
	lect, err := svc.lectures.GetByID(sh.LectureID)
	if err != nil {
		if errors.Is(err, lecture.ErrNotFound) {
			return nil, ErrLectureNotFound
		}
		return nil, err
	}

	history, err := svc.repo.QueryAllRecords()
	if err != nil {
		return nil, err
	}
	before := ratios(history)

	records := make([]Record, 0, len(sh.Statuses))
	for studentID, status := range sh.Statuses {
		records = append(records, Record{
			ID:        core.NewID(),
			StudentID: studentID,
			LectureID: lect.ID,
			Batch:     lect.Batch,
			Course:    lect.Course,
			Semester:  lect.Semester,
			Subject:   lect.Subject,
			Date:      sh.Date,
			Status:    status,
		})
	}
	if err = svc.repo.AddRecords(records...); err != nil {
		return nil, err
	}

	svc.alertNewlyLow(before, ratios(append(history, records...)))
	return records, nil
}

// ForStudent filters records down to one student's history.
func ForStudent(records []Record, studentID string) []Record {
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if r.StudentID == studentID {
			matched = append(matched, r)
		}
	}
	return matched
}

type ratio struct {
	present, total int
}

func (r ratio) low() bool {
	return r.total > 0 && float64(r.present)/float64(r.total)*100 < LowAttendanceThreshold
}

func ratios(records []Record) map[string]ratio {
	byStudent := make(map[string]ratio)
	for _, rec := range records {
		r := byStudent[rec.StudentID]
		r.total++
		if rec.Status == StatusPresent {
			r.present++
		}
		byStudent[rec.StudentID] = r
	}
	return byStudent
}

// alertNewlyLow mails every student that crossed below the threshold in this
// save. Already-low students are not re-mailed on every sheet.
func (svc *Service) alertNewlyLow(before, after map[string]ratio) {
	if svc.mailSvc == nil {
		return
	}
	msgs := make([]*core.EmailMessage, 0)
	for studentID, r := range after {
		if !r.low() || before[studentID].low() {
			continue
		}
		st, err := svc.students.GetByID(studentID)
		if err != nil || st.Email == "" {
			continue
		}
		pct := float64(r.present) / float64(r.total) * 100
		msgs = append(msgs, &core.EmailMessage{
			To:      []mail.Address{{Name: st.FullName(), Address: st.Email}},
			Subject: "Low attendance warning",
			Body: fmt.Sprintf(
				"Dear %s,\n\nYour attendance has dropped to %.1f%%, below the required %.0f%%. "+
					"Please contact the department office.\n",
				st.FullName(), pct, LowAttendanceThreshold),
		})
	}
	if len(msgs) > 0 {
		svc.mailSvc.SendMessages(msgs...)
	}
}
