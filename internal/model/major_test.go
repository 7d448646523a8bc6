package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCS(t *testing.T) *Major {
	t.Helper()
	m := NewMajor("CS")
	require.NoError(t, m.AddRequirement("CS101", RequirementRequired))
	require.NoError(t, m.AddRequirement("CS102", RequirementRequired))
	require.NoError(t, m.AddRequirement("CS200", RequirementElective))
	require.NoError(t, m.AddRequirement("CS201", RequirementElective))
	return m
}

func TestMajor_AddRequirement(t *testing.T) {
	m := newCS(t)
	assert.Equal(t, []string{"CS101", "CS102"}, m.Required.Sorted())
	assert.Equal(t, []string{"CS200", "CS201"}, m.Electives.Sorted())
}

func TestMajor_AddRequirement_InvalidKind(t *testing.T) {
	m := NewMajor("CS")
	for _, kind := range []RequirementKind{"X", "r", "", "RE"} {
		err := m.AddRequirement("CS101", kind)

		var ike *InvalidKindError
		require.True(t, errors.As(err, &ike), "kind %q", kind)
		assert.Equal(t, "CS", ike.Major)
		assert.Equal(t, "CS101", ike.Course)
		assert.Equal(t, kind, ike.Kind)
	}
	assert.Empty(t, m.Required)
	assert.Empty(t, m.Electives)
}

func TestMajor_Remaining(t *testing.T) {
	tests := []struct {
		name      string
		completed map[string]Grade
		passed    []string
		required  []string
		electives []string // nil means satisfied
	}{
		{
			name:      "required and elective passed",
			completed: map[string]Grade{"CS101": "A", "CS200": "B-"},
			passed:    []string{"CS101", "CS200"},
			required:  []string{"CS102"},
		},
		{
			name:      "failed required course",
			completed: map[string]Grade{"CS101": "F"},
			passed:    []string{},
			required:  []string{"CS101", "CS102"},
			electives: []string{"CS200", "CS201"},
		},
		{
			name:      "nothing completed",
			completed: map[string]Grade{},
			passed:    []string{},
			required:  []string{"CS101", "CS102"},
			electives: []string{"CS200", "CS201"},
		},
		{
			name:      "other elective passed",
			completed: map[string]Grade{"CS201": "C", "CS101": "C+", "CS102": "A-"},
			passed:    []string{"CS101", "CS102", "CS201"},
			required:  []string{},
		},
		{
			name:      "failed elective does not satisfy",
			completed: map[string]Grade{"CS200": "C-", "CS101": "B+"},
			passed:    []string{"CS101"},
			required:  []string{"CS102"},
			electives: []string{"CS200", "CS201"},
		},
		{
			name:      "grades are case sensitive",
			completed: map[string]Grade{"CS101": "a", "CS200": "b"},
			passed:    []string{},
			required:  []string{"CS101", "CS102"},
			electives: []string{"CS200", "CS201"},
		},
		{
			name:      "courses outside the major still count as passed",
			completed: map[string]Grade{"MATH1": "A"},
			passed:    []string{"MATH1"},
			required:  []string{"CS101", "CS102"},
			electives: []string{"CS200", "CS201"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCS(t)
			got := m.Remaining(tt.completed)

			assert.Equal(t, "CS", got.Major)
			if diff := cmp.Diff(tt.passed, got.Passed.Sorted()); diff != "" {
				t.Errorf("passed mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.required, got.Required.Sorted()); diff != "" {
				t.Errorf("required mismatch (-want +got):\n%s", diff)
			}
			if tt.electives == nil {
				assert.True(t, got.ElectivesSatisfied())
			} else {
				require.False(t, got.ElectivesSatisfied())
				if diff := cmp.Diff(tt.electives, got.Electives.Sorted()); diff != "" {
					t.Errorf("electives mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestMajor_Remaining_IsPure(t *testing.T) {
	m := newCS(t)
	completed := map[string]Grade{"CS101": "A", "CS102": "D"}

	first := m.Remaining(completed)
	second := m.Remaining(completed)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated call differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, map[string]Grade{"CS101": "A", "CS102": "D"}, completed)
	assert.Equal(t, []string{"CS101", "CS102"}, m.Required.Sorted())
	assert.Equal(t, []string{"CS200", "CS201"}, m.Electives.Sorted())

	// The outstanding elective set is a copy, not the major's own set.
	first.Electives.Add("CS999")
	assert.False(t, m.Electives.Has("CS999"))
}

func TestMajor_Remaining_RequiredIsExactDifference(t *testing.T) {
	m := newCS(t)
	completed := map[string]Grade{"CS101": "B", "CS102": "F", "CS300": "A"}

	got := m.Remaining(completed)

	want := m.Required.Difference(PassedCourses(completed))
	assert.Equal(t, want, got.Required)
	assert.Equal(t, NewSet("CS102"), got.Required)
}

func TestMajor_Remaining_NoElectivesDefined(t *testing.T) {
	m := NewMajor("MATH")
	require.NoError(t, m.AddRequirement("MA101", RequirementRequired))

	got := m.Remaining(map[string]Grade{"MA101": "A"})

	assert.False(t, got.ElectivesSatisfied())
	assert.Empty(t, got.Electives)
	assert.Empty(t, got.Required)
}

func TestCatalog_GetOrCreate(t *testing.T) {
	c := NewCatalog()

	_, ok := c.Lookup("CS")
	assert.False(t, ok)

	first := c.GetOrCreate("CS")
	second := c.GetOrCreate("CS")
	assert.Same(t, first, second)

	c.GetOrCreate("BIO")
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"BIO", "CS"}, c.Labels())

	got, ok := c.Lookup("CS")
	require.True(t, ok)
	assert.Same(t, first, got)
}
