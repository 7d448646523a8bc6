// Package repository owns every entity loaded for one run and cross-links
// them as the input sources are read.
package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/response"
	"github.com/stemsi/registrar/internal/source"
)

// Sources configures the four input files read by Load.
type Sources struct {
	Majors      source.Config `yaml:"majors" validate:"required"`
	Students    source.Config `yaml:"students" validate:"required"`
	Instructors source.Config `yaml:"instructors" validate:"required"`
	Grades      source.Config `yaml:"grades" validate:"required"`
}

// Repository is the in-memory store of majors, students and instructors.
// It is built once by Load and only read afterwards.
type Repository struct {
	majors      *model.Catalog
	students    map[string]*model.Student
	instructors map[string]*model.Instructor
	courses     map[string]*model.Course
	diagnostics []response.Diagnostic
	log         zerolog.Logger
}

// New creates an empty Repository.
func New(log zerolog.Logger) *Repository {
	return &Repository{
		majors:      model.NewCatalog(),
		students:    make(map[string]*model.Student),
		instructors: make(map[string]*model.Instructor),
		courses:     make(map[string]*model.Course),
		log:         log.With().Str("component", "repository").Logger(),
	}
}

type phase struct {
	name string
	cfg  source.Config
	load func(src string, records iter.Seq2[source.Record, error]) error
	size func() int
}

// Load reads every source in dependency order: majors, students,
// instructors, then grades.
//
// A missing file is recorded as a diagnostic and its phase is skipped. A
// structural error (wrong field count, bad requirement flag) stops the
// remaining phases; the repository is still returned with everything loaded
// before the failure, alongside the error.
func Load(ctx context.Context, src Sources, log zerolog.Logger) (*Repository, error) {
	r := New(log)

	phases := []phase{
		{name: "majors", cfg: src.Majors, load: r.LoadMajors, size: r.majors.Len},
		{name: "students", cfg: src.Students, load: r.LoadStudents, size: func() int { return len(r.students) }},
		{name: "instructors", cfg: src.Instructors, load: r.LoadInstructors, size: func() int { return len(r.instructors) }},
		{name: "grades", cfg: src.Grades, load: r.LoadGrades, size: func() int { return len(r.courses) }},
	}

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return r, err
		}

		if p.cfg.Name == "" {
			p.cfg.Name = filepath.Base(p.cfg.Path)
		}
		name := p.cfg.Name

		err := p.load(name, source.Records(p.cfg))
		if err == nil {
			r.log.Info().
				Str("phase", p.name).
				Str("path", p.cfg.Path).
				Int("entities", p.size()).
				Msg("Phase loaded")
			continue
		}

		if errors.Is(err, fs.ErrNotExist) {
			r.report(response.NewDiagnostic(response.ErrSourceNotFound, name, 0, p.cfg.Path))
			continue
		}

		d := response.NewDiagnostic(ErrorCode(err), name, 0, "")
		d.Message = err.Error()
		var fce *source.FieldCountError
		if errors.As(err, &fce) {
			d.Line = fce.Line
		}
		r.diagnostics = append(r.diagnostics, d)
		r.log.Error().Err(err).Str("phase", p.name).Msg("Load stopped")
		return r, fmt.Errorf("load %s: %w", p.name, err)
	}

	return r, nil
}

// ErrorCode maps a structural load error to its diagnostic code.
func ErrorCode(err error) response.ErrCode {
	var fce *source.FieldCountError
	var ike *model.InvalidKindError
	switch {
	case errors.As(err, &fce):
		return response.ErrFieldCount
	case errors.As(err, &ike):
		return response.ErrInvalidKind
	case errors.Is(err, source.ErrConsumed):
		return response.ErrInternal
	default:
		return response.ErrSourceRead
	}
}

// report records a non-fatal diagnostic and logs it.
func (r *Repository) report(d response.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	r.log.Warn().
		Str("code", string(d.Code)).
		Str("source", d.Source).
		Int("line", d.Line).
		Str("subject", d.Subject).
		Msg(d.Message)
}

// Diagnostics returns every finding raised while loading, in order.
func (r *Repository) Diagnostics() []response.Diagnostic {
	out := make([]response.Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}
