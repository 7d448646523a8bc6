package model

// Course groups the grade records seen for one course id.
type Course struct {
	ID          string `json:"id"`
	Instructors Set    `json:"-"`
	Records     int    `json:"records"`
}

// NewCourse creates an empty course roster.
func NewCourse(id string) *Course {
	return &Course{ID: id, Instructors: make(Set)}
}

// AddRecord counts a grade record taught by instructorID.
func (c *Course) AddRecord(instructorID string) {
	c.Instructors.Add(instructorID)
	c.Records++
}
