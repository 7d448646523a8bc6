package model

// Grade is a letter grade as it appears in the grades source.
type Grade string

// Passing grades. Membership is exact and case-sensitive.
const (
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
)

var passingGrades = map[Grade]struct{}{
	GradeA:      {},
	GradeAMinus: {},
	GradeBPlus:  {},
	GradeB:      {},
	GradeBMinus: {},
	GradeCPlus:  {},
	GradeC:      {},
}

// IsPassing reports whether g counts as a successful course completion.
func (g Grade) IsPassing() bool {
	_, ok := passingGrades[g]
	return ok
}

// PassedCourses returns the courses in completed whose grade is passing.
func PassedCourses(completed map[string]Grade) Set {
	passed := make(Set, len(completed))
	for course, grade := range completed {
		if grade.IsPassing() {
			passed.Add(course)
		}
	}
	return passed
}
