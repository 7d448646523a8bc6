package model

// Student represents an enrolled student and the grades recorded so far.
type Student struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Major   *Major           `json:"-"`
	Courses map[string]Grade `json:"courses"`
}

// NewStudent creates a student of the given major with no recorded courses.
func NewStudent(id, name string, major *Major) *Student {
	return &Student{
		ID:      id,
		Name:    name,
		Major:   major,
		Courses: make(map[string]Grade),
	}
}

// AddCourse records grade for course. A later grade for the same course
// replaces the earlier one.
func (s *Student) AddCourse(course string, grade Grade) {
	s.Courses[course] = grade
}

// Remaining resolves the student's outstanding requirements against their major.
func (s *Student) Remaining() Remaining {
	return s.Major.Remaining(s.Courses)
}
