package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int             { return &v }
func floatp(v float64) *float64   { return &v }

func TestNewRequirement_SimpleCarriesEligibleGroup(t *testing.T) {
	req, err := NewRequirement(1, TermFall, 2025, "Core", RequirementSimple, 12)
	require.NoError(t, err)
	require.Len(t, req.Groups, 1)
	assert.Equal(t, EligibleGroupName, req.Groups[0].Name)
}

func TestNewRequirement_NegativeCredits(t *testing.T) {
	_, err := NewRequirement(1, TermFall, 2025, "Core", RequirementSimple, -3)
	assert.ErrorIs(t, err, ErrNegativeCredits)
}

func TestRequirement_GroupNameUniqueness(t *testing.T) {
	req, err := NewRequirement(1, TermFall, 2025, "Sciences", RequirementGrouped, 20)
	require.NoError(t, err)

	_, err = req.AddGroup("A")
	require.NoError(t, err)
	_, err = req.AddGroup("A")
	assert.ErrorIs(t, err, ErrDuplicateGroupName)
}

func TestRequirement_SimpleGroupsImmutable(t *testing.T) {
	req, err := NewRequirement(1, TermFall, 2025, "Core", RequirementSimple, 12)
	require.NoError(t, err)

	_, err = req.AddGroup("Extra")
	assert.ErrorIs(t, err, ErrSimpleGroupImmutable)
	assert.ErrorIs(t, req.RemoveGroup(EligibleGroupName), ErrSimpleGroupImmutable)
}

func TestRequirement_RemoveGroupReclassifiesScopedConstraints(t *testing.T) {
	req, err := NewRequirement(1, TermFall, 2025, "Sciences", RequirementGrouped, 20)
	require.NoError(t, err)
	_, err = req.AddGroup("A")
	require.NoError(t, err)
	_, err = req.AddGroup("B")
	require.NoError(t, err)

	require.NoError(t, req.AddConstraint(Constraint{
		Type:   ConstraintCourses,
		Params: CourseCountParams{Min: intp(2)},
		Scope:  ConstraintScope{GroupName: "A"},
	}))

	require.NoError(t, req.RemoveGroup("A"))

	// No dangling scope reference: the constraint survives as unscoped.
	require.Len(t, req.Constraints, 1)
	assert.Empty(t, req.Constraints[0].Scope.GroupName)
	assert.Nil(t, req.GroupByName("A"))
}

func TestRequirement_AddConstraintValidation(t *testing.T) {
	req, err := NewRequirement(1, TermFall, 2025, "Core", RequirementSimple, 12)
	require.NoError(t, err)

	tests := []struct {
		name       string
		constraint Constraint
		wantErr    error
	}{
		{
			"scope must reference an existing group",
			Constraint{Type: ConstraintCredits, Params: CreditRangeParams{Min: floatp(3)}, Scope: ConstraintScope{GroupName: "Nope"}},
			ErrScopeGroupNotFound,
		},
		{
			"params must match type",
			Constraint{Type: ConstraintCredits, Params: TagCountParams{Tag: "x", Courses: 1}},
			ErrMissingParams,
		},
		{
			"negative bound rejected",
			Constraint{Type: ConstraintCredits, Params: CreditRangeParams{Min: floatp(-1)}},
			ErrNegativeBound,
		},
		{
			"unknown type rejected",
			Constraint{Type: ConstraintType("bogus"), Params: CreditRangeParams{}},
			ErrUnknownConstraintType,
		},
		{
			"missing params rejected",
			Constraint{Type: ConstraintCourses},
			ErrMissingParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, req.AddConstraint(tt.constraint), tt.wantErr)
		})
	}

	// Inverted bounds are evaluation-time unsatisfiable, not a build error.
	assert.NoError(t, req.AddConstraint(Constraint{
		Type:   ConstraintCredits,
		Params: CreditRangeParams{Min: floatp(10), Max: floatp(5)},
	}))
}

func TestRequirement_OptionLifecycle(t *testing.T) {
	req, err := NewRequirement(1, TermFall, 2025, "Core", RequirementSimple, 12)
	require.NoError(t, err)

	require.NoError(t, req.AddOption(EligibleGroupName, CourseOption{ID: 7, CourseCode: "BIOS 101", Institution: "State U"}))
	assert.ErrorIs(t, req.AddOption("Missing", CourseOption{}), ErrGroupNotInRequirement)

	keys := req.OptionKeys()
	require.Len(t, keys, 1)
	assert.Equal(t, CourseKey{Code: "BIOS 101", Institution: "State U"}, keys[0])

	require.NoError(t, req.RemoveOption(EligibleGroupName, 7))
	assert.ErrorIs(t, req.RemoveOption(EligibleGroupName, 7), ErrOptionNotInGroup)
}

func TestRequirement_Normalize(t *testing.T) {
	// A SIMPLE requirement loaded from storage without its implicit group
	// gets one back.
	req := &Requirement{ID: 3, Type: RequirementSimple}
	req.Normalize()
	require.Len(t, req.Groups, 1)
	assert.Equal(t, EligibleGroupName, req.Groups[0].Name)
}

func TestSubjectOf(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"BIOS 101", "BIOS"},
		{"BIOS101", "BIOS"},
		{" MATH 2410 ", "MATH"},
		{"101", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SubjectOf(tt.code), tt.code)
	}
}
