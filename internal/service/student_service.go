package service

import (
	"errors"
	"sort"

	"github.com/stemsi/registrar/internal/repository"
)

// ErrStudentNotFound is returned when an id is not in the repository.
var ErrStudentNotFound = errors.New("student not found")

// CourseGrade is one graded course of a student transcript.
type CourseGrade struct {
	Course  string `json:"course"`
	Grade   string `json:"grade"`
	Passing bool   `json:"passing"`
}

// Transcript is the full record of one student.
type Transcript struct {
	StudentRow
	Courses []CourseGrade `json:"courses"`
}

// StudentService handles per-student lookups.
type StudentService struct {
	repo *repository.Repository
}

// NewStudentService creates a new StudentService.
func NewStudentService(repo *repository.Repository) *StudentService {
	return &StudentService{repo: repo}
}

// GetTranscript returns every recorded grade of the student together with
// the requirement status.
func (s *StudentService) GetTranscript(id string) (*Transcript, error) {
	st, ok := s.repo.GetStudentByID(id)
	if !ok {
		return nil, ErrStudentNotFound
	}

	t := &Transcript{
		StudentRow: newStudentRow(st),
		Courses:    make([]CourseGrade, 0, len(st.Courses)),
	}

	for course, grade := range st.Courses {
		t.Courses = append(t.Courses, CourseGrade{
			Course:  course,
			Grade:   string(grade),
			Passing: grade.IsPassing(),
		})
	}
	sort.Slice(t.Courses, func(i, j int) bool { return t.Courses[i].Course < t.Courses[j].Course })
	return t, nil
}
