package repository

import (
	"iter"
	"sort"

	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/response"
	"github.com/stemsi/registrar/internal/source"
)

// LoadStudents reads (id, name, major) records. Students whose major is not
// in the catalog are reported and skipped. A repeated id replaces the earlier
// student.
func (r *Repository) LoadStudents(src string, records iter.Seq2[source.Record, error]) error {
	line := 0
	for rec, err := range records {
		if err != nil {
			return err
		}
		line++
		id, name, label := rec[0], rec[1], rec[2]
		major, ok := r.majors.Lookup(label)
		if !ok {
			r.report(response.NewDiagnostic(response.ErrUnknownMajor, src, line, label))
			continue
		}
		r.students[id] = model.NewStudent(id, name, major)
	}
	return nil
}

// GetAllStudents retrieves every student ordered by id.
func (r *Repository) GetAllStudents() []*model.Student {
	students := make([]*model.Student, 0, len(r.students))
	for _, s := range r.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

// GetStudentByID retrieves a student by id.
func (r *Repository) GetStudentByID(id string) (*model.Student, bool) {
	s, ok := r.students[id]
	return s, ok
}
