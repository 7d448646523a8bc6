package service

import (
	"sort"

	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/repository"
)

// MajorRow is one line of the majors summary.
type MajorRow struct {
	Major     string   `json:"major"`
	Required  []string `json:"required"`
	Electives []string `json:"electives"`
}

// StudentRow is one line of the students summary. RemainingElectives is nil
// once the student has passed an elective.
type StudentRow struct {
	ID                 string   `json:"cwid"`
	Name               string   `json:"name"`
	Major              string   `json:"major"`
	Passed             []string `json:"completed_courses"`
	RemainingRequired  []string `json:"remaining_required"`
	RemainingElectives []string `json:"remaining_electives"`
}

// ElectivesSatisfied reports whether no elective is outstanding.
func (r StudentRow) ElectivesSatisfied() bool {
	return r.RemainingElectives == nil
}

// InstructorRow is one (instructor, course) line of the instructors summary.
type InstructorRow struct {
	ID         string `json:"cwid"`
	Name       string `json:"name"`
	Department string `json:"dept"`
	Course     string `json:"course"`
	Students   int    `json:"students"`
}

// CourseRow is one line of the course roster summary.
type CourseRow struct {
	Course      string   `json:"course"`
	Instructors []string `json:"instructors"`
	Records     int      `json:"records"`
}

// Summary bundles every table of a full report.
type Summary struct {
	Majors      []MajorRow      `json:"majors"`
	Students    []StudentRow    `json:"students"`
	Instructors []InstructorRow `json:"instructors"`
	Courses     []CourseRow     `json:"courses"`
}

// ReportService turns a loaded repository into row-oriented summaries.
type ReportService struct {
	repo *repository.Repository
}

// NewReportService creates a new ReportService.
func NewReportService(repo *repository.Repository) *ReportService {
	return &ReportService{repo: repo}
}

// Majors returns one row per major with sorted requirement lists.
func (s *ReportService) Majors() []MajorRow {
	majors := s.repo.GetAllMajors()
	rows := make([]MajorRow, 0, len(majors))
	for _, m := range majors {
		rows = append(rows, MajorRow{
			Major:     m.Label,
			Required:  m.Required.Sorted(),
			Electives: m.Electives.Sorted(),
		})
	}
	return rows
}

// Students returns one row per student with requirements resolved against
// the student's major.
func (s *ReportService) Students() []StudentRow {
	students := s.repo.GetAllStudents()
	rows := make([]StudentRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, newStudentRow(st))
	}
	return rows
}

// Instructors returns one row per course taught. Instructors without any
// graded course contribute no rows.
func (s *ReportService) Instructors() []InstructorRow {
	var rows []InstructorRow
	for _, in := range s.repo.GetAllInstructors() {
		for _, course := range sortedCourses(in) {
			rows = append(rows, InstructorRow{
				ID:         in.ID,
				Name:       in.Name,
				Department: in.Department,
				Course:     course,
				Students:   in.Courses[course],
			})
		}
	}
	if rows == nil {
		rows = []InstructorRow{}
	}
	return rows
}

// Courses returns the roster of every graded course.
func (s *ReportService) Courses() []CourseRow {
	courses := s.repo.GetAllCourses()
	rows := make([]CourseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, CourseRow{
			Course:      c.ID,
			Instructors: c.Instructors.Sorted(),
			Records:     c.Records,
		})
	}
	return rows
}

// Summary builds every table.
func (s *ReportService) Summary() Summary {
	return Summary{
		Majors:      s.Majors(),
		Students:    s.Students(),
		Instructors: s.Instructors(),
		Courses:     s.Courses(),
	}
}

func sortedCourses(in *model.Instructor) []string {
	courses := make([]string, 0, len(in.Courses))
	for c := range in.Courses {
		courses = append(courses, c)
	}
	sort.Strings(courses)
	return courses
}

func newStudentRow(st *model.Student) StudentRow {
	rem := st.Remaining()
	row := StudentRow{
		ID:                st.ID,
		Name:              st.Name,
		Major:             rem.Major,
		Passed:            rem.Passed.Sorted(),
		RemainingRequired: rem.Required.Sorted(),
	}
	if !rem.ElectivesSatisfied() {
		row.RemainingElectives = rem.Electives.Sorted()
	}
	return row
}
