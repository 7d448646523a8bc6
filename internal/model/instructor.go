package model

// Instructor represents a faculty member and the enrollment of each course
// they taught.
type Instructor struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	Courses    map[string]int `json:"courses"`
}

// NewInstructor creates an instructor with no courses.
func NewInstructor(id, name, department string) *Instructor {
	return &Instructor{
		ID:         id,
		Name:       name,
		Department: department,
		Courses:    make(map[string]int),
	}
}

// AddStudent counts one more student taking course with this instructor.
func (i *Instructor) AddStudent(course string) {
	i.Courses[course]++
}
