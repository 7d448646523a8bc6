package service

import (
	"iter"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stemsi/registrar/internal/repository"
	"github.com/stemsi/registrar/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(in string, fields int) iter.Seq2[source.Record, error] {
	return source.Read(strings.NewReader(in), source.Config{Name: "test", Separator: "|", Fields: fields})
}

func newRepo(t *testing.T, majors, students, instructors, grades string) *repository.Repository {
	t.Helper()
	repo := repository.New(zerolog.Nop())
	require.NoError(t, repo.LoadMajors("majors", records(majors, 3)))
	require.NoError(t, repo.LoadStudents("students", records(students, 3)))
	require.NoError(t, repo.LoadInstructors("instructors", records(instructors, 3)))
	require.NoError(t, repo.LoadGrades("grades", records(grades, 4)))
	return repo
}

const (
	majors = "CS|R|CS102\nCS|R|CS101\nCS|E|CS201\nCS|E|CS200\nEE|R|EE100\n"
)

func TestReportService_Majors(t *testing.T) {
	repo := newRepo(t, majors, "", "", "")

	got := NewReportService(repo).Majors()

	want := []MajorRow{
		{Major: "CS", Required: []string{"CS101", "CS102"}, Electives: []string{"CS200", "CS201"}},
		{Major: "EE", Required: []string{"EE100"}, Electives: []string{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("majors mismatch (-want +got):\n%s", diff)
	}
}

func TestReportService_Students(t *testing.T) {
	repo := newRepo(t, majors,
		"2|Bob|CS\n1|Ada|CS\n",
		"9|Turing|CS\n",
		"1|CS101|A|9\n1|CS200|B-|9\n2|CS101|F|9\n",
	)

	got := NewReportService(repo).Students()

	want := []StudentRow{
		{
			ID:                "1",
			Name:              "Ada",
			Major:             "CS",
			Passed:            []string{"CS101", "CS200"},
			RemainingRequired: []string{"CS102"},
		},
		{
			ID:                 "2",
			Name:               "Bob",
			Major:              "CS",
			Passed:             []string{},
			RemainingRequired:  []string{"CS101", "CS102"},
			RemainingElectives: []string{"CS200", "CS201"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("students mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got[0].ElectivesSatisfied())
	assert.False(t, got[1].ElectivesSatisfied())
}

func TestReportService_Instructors(t *testing.T) {
	repo := newRepo(t, majors,
		"1|Ada|CS\n2|Bob|CS\n3|Cy|CS\n",
		"9|Turing|CS\n8|Idle|EE\n7|Hopper|CS\n",
		"1|CS101|A|9\n2|CS101|B|9\n3|CS101|C|9\n1|CS200|A|7\n",
	)

	got := NewReportService(repo).Instructors()

	want := []InstructorRow{
		{ID: "7", Name: "Hopper", Department: "CS", Course: "CS200", Students: 1},
		{ID: "9", Name: "Turing", Department: "CS", Course: "CS101", Students: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("instructors mismatch (-want +got):\n%s", diff)
	}
}

func TestReportService_Instructors_NoneTeaching(t *testing.T) {
	repo := newRepo(t, majors, "", "8|Idle|EE\n", "")

	got := NewReportService(repo).Instructors()

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReportService_Courses(t *testing.T) {
	repo := newRepo(t, majors,
		"1|Ada|CS\n",
		"9|Turing|CS\n",
		"1|CS101|A|9\n404|CS101|B|7\n1|CS200|A|9\n",
	)

	got := NewReportService(repo).Courses()

	want := []CourseRow{
		{Course: "CS101", Instructors: []string{"7", "9"}, Records: 2},
		{Course: "CS200", Instructors: []string{"9"}, Records: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("courses mismatch (-want +got):\n%s", diff)
	}
}

func TestReportService_Summary(t *testing.T) {
	repo := newRepo(t, majors, "1|Ada|CS\n", "9|Turing|CS\n", "1|CS101|A|9\n")

	s := NewReportService(repo).Summary()

	assert.Len(t, s.Majors, 2)
	assert.Len(t, s.Students, 1)
	assert.Len(t, s.Instructors, 1)
	assert.Len(t, s.Courses, 1)
}

func TestStudentService_GetTranscript(t *testing.T) {
	repo := newRepo(t, majors, "1|Ada|CS\n", "9|Turing|CS\n", "1|CS200|D|9\n1|CS101|A|9\n")
	svc := NewStudentService(repo)

	tr, err := svc.GetTranscript("1")
	require.NoError(t, err)

	assert.Equal(t, "Ada", tr.Name)
	assert.Equal(t, []CourseGrade{
		{Course: "CS101", Grade: "A", Passing: true},
		{Course: "CS200", Grade: "D", Passing: false},
	}, tr.Courses)
	assert.Equal(t, []string{"CS102"}, tr.RemainingRequired)
	assert.Equal(t, []string{"CS200", "CS201"}, tr.RemainingElectives)

	_, err = svc.GetTranscript("404")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestMajorService_GetByLabel(t *testing.T) {
	repo := newRepo(t, majors, "2|Bob|CS\n1|Ada|CS\n3|Eve|EE\n", "", "")
	svc := NewMajorService(repo)

	d, err := svc.GetByLabel("CS")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101", "CS102"}, d.Required)
	assert.Equal(t, []string{"1", "2"}, d.Students)

	_, err = svc.GetByLabel("ART")
	assert.ErrorIs(t, err, ErrMajorNotFound)
}
