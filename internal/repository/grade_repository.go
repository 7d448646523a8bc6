package repository

import (
	"iter"
	"sort"

	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/response"
	"github.com/stemsi/registrar/internal/source"
)

// LoadGrades reads (student, course, grade, instructor) records and applies
// each one to the referenced student and instructor. The two sides are
// checked independently: an unknown student does not stop the instructor
// update, and the reverse.
func (r *Repository) LoadGrades(src string, records iter.Seq2[source.Record, error]) error {
	line := 0
	for rec, err := range records {
		if err != nil {
			return err
		}
		line++
		studentID, courseID, grade, instructorID := rec[0], rec[1], rec[2], rec[3]

		if s, ok := r.students[studentID]; ok {
			s.AddCourse(courseID, model.Grade(grade))
		} else {
			r.report(response.NewDiagnostic(response.ErrUnknownStudent, src, line, studentID))
		}

		if i, ok := r.instructors[instructorID]; ok {
			i.AddStudent(courseID)
		} else {
			r.report(response.NewDiagnostic(response.ErrUnknownInstructor, src, line, instructorID))
		}

		r.addCourseRecord(courseID, instructorID)
	}
	return nil
}

func (r *Repository) addCourseRecord(courseID, instructorID string) {
	if courseID == "" {
		return
	}
	c, ok := r.courses[courseID]
	if !ok {
		c = model.NewCourse(courseID)
		r.courses[courseID] = c
	}
	c.AddRecord(instructorID)
}

// GetAllCourses retrieves the roster of every graded course ordered by id.
func (r *Repository) GetAllCourses() []*model.Course {
	courses := make([]*model.Course, 0, len(r.courses))
	for _, c := range r.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}
