package repository

import (
	"iter"

	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/source"
)

// LoadMajors reads (major, flag, course) records into the major catalog.
// An invalid flag stops the phase.
func (r *Repository) LoadMajors(src string, records iter.Seq2[source.Record, error]) error {
	for rec, err := range records {
		if err != nil {
			return err
		}
		label, flag, course := rec[0], rec[1], rec[2]
		major := r.majors.GetOrCreate(label)
		if err := major.AddRequirement(course, model.RequirementKind(flag)); err != nil {
			return err
		}
	}
	return nil
}

// GetAllMajors retrieves every major ordered by label.
func (r *Repository) GetAllMajors() []*model.Major {
	labels := r.majors.Labels()
	majors := make([]*model.Major, 0, len(labels))
	for _, label := range labels {
		m, _ := r.majors.Lookup(label)
		majors = append(majors, m)
	}
	return majors
}

// GetMajorByLabel retrieves a major by its label.
func (r *Repository) GetMajorByLabel(label string) (*model.Major, bool) {
	return r.majors.Lookup(label)
}
