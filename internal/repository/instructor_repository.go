package repository

import (
	"iter"
	"sort"

	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/source"
)

// LoadInstructors reads (id, name, department) records. A repeated id
// replaces the earlier instructor.
func (r *Repository) LoadInstructors(src string, records iter.Seq2[source.Record, error]) error {
	for rec, err := range records {
		if err != nil {
			return err
		}
		id, name, dept := rec[0], rec[1], rec[2]
		r.instructors[id] = model.NewInstructor(id, name, dept)
	}
	return nil
}

// GetAllInstructors retrieves every instructor ordered by id.
func (r *Repository) GetAllInstructors() []*model.Instructor {
	instructors := make([]*model.Instructor, 0, len(r.instructors))
	for _, i := range r.instructors {
		instructors = append(instructors, i)
	}
	sort.Slice(instructors, func(a, b int) bool { return instructors[a].ID < instructors[b].ID })
	return instructors
}

// GetInstructorByID retrieves an instructor by id.
func (r *Repository) GetInstructorByID(id string) (*model.Instructor, bool) {
	i, ok := r.instructors[id]
	return i, ok
}
