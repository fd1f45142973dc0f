package lecture

import (
	"errors"

	"github.com/vidyasetu/vidyasetu/core"
)

var ErrNotFound = errors.New("lecture not found")

type (
	Repository interface {
		CreateLecture(l Lecture) (Lecture, error)
		QueryAllLectures() ([]Lecture, error)
		GetLectureByID(id string) (Lecture, error)
		UpdateLecture(l Lecture) (Lecture, error)
		DeleteLecturesByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nl NewLecture) (Lecture, error) {
	return svc.repo.CreateLecture(Lecture{
		ID:        core.NewID(),
		Batch:     nl.Batch,
		Course:    nl.Course,
		Semester:  nl.Semester,
		Subject:   nl.Subject,
		FacultyID: nl.FacultyID,
		Day:       nl.Day,
		StartTime: nl.StartTime,
		EndTime:   nl.EndTime,
	})
}

func (svc *Service) QueryAll() ([]Lecture, error) {
	return svc.repo.QueryAllLectures()
}

func (svc *Service) GetByID(id string) (Lecture, error) {
	return svc.repo.GetLectureByID(id)
}

// ForClass returns the scheduled lectures for one cohort.
func (svc *Service) ForClass(key core.ClassKey) ([]Lecture, error) {
	lectures, err := svc.repo.QueryAllLectures()
	if err != nil {
		return nil, err
	}
	matched := make([]Lecture, 0, len(lectures))
	for _, l := range lectures {
		if l.ClassKey() == key {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (svc *Service) Update(id string, ul UpdateLecture) (Lecture, error) {
	orig, err := svc.repo.GetLectureByID(id)
	if err != nil {
		return Lecture{}, err
	}

	l := orig
	if ul.Batch != "" {
		l.Batch = ul.Batch
	}
	if ul.Course != "" {
		l.Course = ul.Course
	}
	if ul.Semester != 0 {
		l.Semester = ul.Semester
	}
	if ul.Subject != "" {
		l.Subject = ul.Subject
	}
	if ul.FacultyID != "" {
		l.FacultyID = ul.FacultyID
	}
	if ul.Day != "" {
		l.Day = ul.Day
	}
	if ul.StartTime != "" {
		l.StartTime = ul.StartTime
	}
	if ul.EndTime != "" {
		l.EndTime = ul.EndTime
	}
	return svc.repo.UpdateLecture(l)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteLecturesByID(ids...)
}
