// Package render writes report summaries as terminal tables, JSON or xlsx
// workbooks.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/stemsi/registrar/internal/service"
)

// SatisfiedMarker is printed when a student has no outstanding electives.
const SatisfiedMarker = "None"

var (
	MajorHeaders      = []string{"Major", "Required Courses", "Electives"}
	StudentHeaders    = []string{"CWID", "Name", "Major", "Completed Courses", "Remaining Required", "Remaining Electives"}
	InstructorHeaders = []string{"CWID", "Name", "Dept", "Course", "Students"}
	CourseHeaders     = []string{"Course", "Instructors", "Grade Records"}
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TableRenderer prints summaries as bordered text tables.
type TableRenderer struct {
	w      io.Writer
	styled bool
}

// NewTableRenderer creates a renderer writing to w. Colors are only applied
// when styled is true, which callers set for interactive terminals.
func NewTableRenderer(w io.Writer, styled bool) *TableRenderer {
	return &TableRenderer{w: w, styled: styled}
}

// Majors prints the majors summary.
func (r *TableRenderer) Majors(rows []service.MajorRow) error {
	return r.write("Majors Summary", MajorHeaders, MajorCells(rows))
}

// Students prints the students summary.
func (r *TableRenderer) Students(rows []service.StudentRow) error {
	return r.write("Student Summary", StudentHeaders, StudentCells(rows))
}

// Instructors prints the instructors summary.
func (r *TableRenderer) Instructors(rows []service.InstructorRow) error {
	return r.write("Instructor Summary", InstructorHeaders, InstructorCells(rows))
}

// Courses prints the course roster summary.
func (r *TableRenderer) Courses(rows []service.CourseRow) error {
	return r.write("Course Summary", CourseHeaders, CourseCells(rows))
}

// Summary prints majors, students and instructors in that order.
func (r *TableRenderer) Summary(s service.Summary) error {
	if err := r.Majors(s.Majors); err != nil {
		return err
	}
	if err := r.Students(s.Students); err != nil {
		return err
	}
	return r.Instructors(s.Instructors)
}

func (r *TableRenderer) write(title string, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if r.styled {
		title = titleStyle.Render(title)
		t = t.BorderStyle(borderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
	} else {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})
	}

	_, err := fmt.Fprintf(r.w, "\n%s\n%s\n", title, t.Render())
	return err
}

// MajorCells converts major rows to table cells.
func MajorCells(rows []service.MajorRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.Major, FormatList(row.Required), FormatList(row.Electives)})
	}
	return out
}

// StudentCells converts student rows to table cells.
func StudentCells(rows []service.StudentRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		electives := SatisfiedMarker
		if !row.ElectivesSatisfied() {
			electives = FormatList(row.RemainingElectives)
		}
		out = append(out, []string{
			row.ID,
			row.Name,
			row.Major,
			FormatList(row.Passed),
			FormatList(row.RemainingRequired),
			electives,
		})
	}
	return out
}

// InstructorCells converts instructor rows to table cells.
func InstructorCells(rows []service.InstructorRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.ID, row.Name, row.Department, row.Course, strconv.Itoa(row.Students)})
	}
	return out
}

// CourseCells converts course roster rows to table cells.
func CourseCells(rows []service.CourseRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.Course, FormatList(row.Instructors), strconv.Itoa(row.Records)})
	}
	return out
}

// FormatList renders ids as a bracketed, comma separated list.
func FormatList(ids []string) string {
	return "[" + strings.Join(ids, ", ") + "]"
}
