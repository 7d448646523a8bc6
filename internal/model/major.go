package model

import (
	"fmt"
	"sort"
)

// RequirementKind is the flag column of the majors source.
type RequirementKind string

const (
	RequirementRequired RequirementKind = "R"
	RequirementElective RequirementKind = "E"
)

// InvalidKindError is returned when a majors record carries a flag other
// than R or E.
type InvalidKindError struct {
	Major  string
	Course string
	Kind   RequirementKind
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("major %q: course %q has requirement flag %q, expected %q or %q",
		e.Major, e.Course, e.Kind, RequirementRequired, RequirementElective)
}

// Major represents a field of study and its degree requirements. A student
// must pass every required course and at least one elective.
type Major struct {
	Label     string `json:"label"`
	Required  Set    `json:"-"`
	Electives Set    `json:"-"`
}

// NewMajor creates a major with empty requirement sets.
func NewMajor(label string) *Major {
	return &Major{
		Label:     label,
		Required:  make(Set),
		Electives: make(Set),
	}
}

// AddRequirement records course under the set selected by kind.
func (m *Major) AddRequirement(course string, kind RequirementKind) error {
	switch kind {
	case RequirementRequired:
		m.Required.Add(course)
	case RequirementElective:
		m.Electives.Add(course)
	default:
		return &InvalidKindError{Major: m.Label, Course: course, Kind: kind}
	}
	return nil
}

// Remaining is the requirement status of one student against a major.
// Electives is nil once any elective has been passed.
type Remaining struct {
	Major     string
	Passed    Set
	Required  Set
	Electives Set
}

// ElectivesSatisfied reports whether at least one elective has been passed.
func (r Remaining) ElectivesSatisfied() bool {
	return r.Electives == nil
}

// Remaining computes which requirements are still outstanding given the
// student's course-to-grade mapping. It does not modify m or completed.
func (m *Major) Remaining(completed map[string]Grade) Remaining {
	passed := PassedCourses(completed)

	var electives Set
	if !m.Electives.Intersects(passed) {
		electives = m.Electives.Clone()
	}

	return Remaining{
		Major:     m.Label,
		Passed:    passed,
		Required:  m.Required.Difference(passed),
		Electives: electives,
	}
}

// Catalog holds every major keyed by label.
type Catalog struct {
	majors map[string]*Major
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{majors: make(map[string]*Major)}
}

// GetOrCreate returns the major for label, registering an empty one on first
// reference.
func (c *Catalog) GetOrCreate(label string) *Major {
	if m, ok := c.majors[label]; ok {
		return m
	}
	m := NewMajor(label)
	c.majors[label] = m
	return m
}

// Lookup returns the major for label if it has been defined.
func (c *Catalog) Lookup(label string) (*Major, bool) {
	m, ok := c.majors[label]
	return m, ok
}

// Labels returns all major labels in lexicographic order.
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, len(c.majors))
	for label := range c.majors {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Len returns the number of majors in the catalog.
func (c *Catalog) Len() int {
	return len(c.majors)
}
