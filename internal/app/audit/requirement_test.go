package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecetin/gradpath/internal/app/models"
)

func catalogCourse(code, institution string, credits float64, level int, tags ...string) *models.Course {
	return &models.Course{Code: code, Institution: institution, Credits: credits, Level: level, Tags: tags}
}

func planCourse(id int64, code, institution string, status models.CourseStatus) *models.PlanCourse {
	return &models.PlanCourse{ID: id, CourseCode: code, Institution: institution, Status: status}
}

func simpleRequirement(creditsRequired int, options ...models.CourseOption) *models.Requirement {
	req, _ := models.NewRequirement(1, models.TermFall, 2025, "Biology Core", models.RequirementSimple, creditsRequired)
	req.Groups[0].Options = options
	return req
}

func option(code, institution string) models.CourseOption {
	return models.CourseOption{CourseCode: code, Institution: institution}
}

func snapshotOf(courses []*models.Course, reqs []*models.Requirement, plan []*models.PlanCourse) *Snapshot {
	byKey := make(map[models.CourseKey]*models.Course)
	for _, c := range courses {
		byKey[c.Key()] = c
	}
	return &Snapshot{Courses: byKey, Requirements: reqs, PlanCourses: plan}
}

func TestEvaluateRequirement_CreditShortfall(t *testing.T) {
	// Pool of 10 completed credits against a 15-credit requirement.
	courses := []*models.Course{
		catalogCourse("BIOS 101", "State U", 3, 1000),
		catalogCourse("BIOS 102", "State U", 3, 1000),
		catalogCourse("BIOS 201", "State U", 4, 2000),
	}
	req := simpleRequirement(15,
		option("BIOS 101", "State U"),
		option("BIOS 102", "State U"),
		option("BIOS 201", "State U"),
	)
	plan := []*models.PlanCourse{
		planCourse(1, "BIOS 101", "State U", models.StatusCompleted),
		planCourse(2, "BIOS 102", "State U", models.StatusCompleted),
		planCourse(3, "BIOS 201", "State U", models.StatusCompleted),
	}

	got := EvaluateRequirement(req, snapshotOf(courses, nil, plan), ModeCompleted)

	assert.False(t, got.IsComplete)
	assert.Equal(t, float64(10), got.CreditsCompleted)
	assert.Equal(t, float64(5), got.CreditsRemaining)
	assert.Len(t, got.Matched, 3)
}

func TestEvaluateRequirement_NoConstraintsCompletion(t *testing.T) {
	courses := []*models.Course{catalogCourse("HIST 100", "State U", 3, 1000)}
	plan := []*models.PlanCourse{planCourse(1, "HIST 100", "State U", models.StatusCompleted)}

	tests := []struct {
		name         string
		required     int
		wantComplete bool
	}{
		{"met exactly", 3, true},
		{"not met", 6, false},
		{"zero required", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := simpleRequirement(tt.required, option("HIST 100", "State U"))
			got := EvaluateRequirement(req, snapshotOf(courses, nil, plan), ModeCompleted)
			assert.Equal(t, tt.wantComplete, got.IsComplete)
		})
	}
}

func TestEvaluateRequirement_ZeroCreditRequiresAMatch(t *testing.T) {
	// A zero-credit, zero-constraint requirement is not vacuously complete:
	// it still wants at least one completed course from its pool.
	courses := []*models.Course{catalogCourse("UNIV 100", "State U", 0, 1000)}
	req := simpleRequirement(0, option("UNIV 100", "State U"))

	empty := EvaluateRequirement(req, snapshotOf(courses, nil, nil), ModeCompleted)
	assert.False(t, empty.IsComplete)

	plan := []*models.PlanCourse{planCourse(1, "UNIV 100", "State U", models.StatusCompleted)}
	done := EvaluateRequirement(req, snapshotOf(courses, nil, plan), ModeCompleted)
	assert.True(t, done.IsComplete)
}

func TestEvaluateRequirement_GroupedConstraints(t *testing.T) {
	// Group A satisfied with two courses, group B short on credits: only the
	// B constraint should surface as unsatisfied.
	courses := []*models.Course{
		catalogCourse("MATH 101", "State U", 3, 1000),
		catalogCourse("MATH 102", "State U", 3, 1000),
		catalogCourse("PHYS 201", "State U", 4, 2000),
		catalogCourse("PHYS 202", "State U", 4, 2000),
	}

	req, err := models.NewRequirement(1, models.TermFall, 2025, "Math & Physics", models.RequirementGrouped, 0)
	require.NoError(t, err)
	_, err = req.AddGroup("A")
	require.NoError(t, err)
	_, err = req.AddGroup("B")
	require.NoError(t, err)
	require.NoError(t, req.AddOption("A", option("MATH 101", "State U")))
	require.NoError(t, req.AddOption("A", option("MATH 102", "State U")))
	require.NoError(t, req.AddOption("B", option("PHYS 201", "State U")))
	require.NoError(t, req.AddOption("B", option("PHYS 202", "State U")))
	require.NoError(t, req.AddConstraint(models.Constraint{
		ID:     10,
		Type:   models.ConstraintCourses,
		Params: models.CourseCountParams{Min: iptr(2)},
		Scope:  models.ConstraintScope{GroupName: "A"},
	}))
	require.NoError(t, req.AddConstraint(models.Constraint{
		ID:     11,
		Type:   models.ConstraintCredits,
		Params: models.CreditRangeParams{Min: fptr(10), Max: fptr(15)},
		Scope:  models.ConstraintScope{GroupName: "B"},
	}))

	plan := []*models.PlanCourse{
		planCourse(1, "MATH 101", "State U", models.StatusCompleted),
		planCourse(2, "MATH 102", "State U", models.StatusCompleted),
		planCourse(3, "PHYS 201", "State U", models.StatusCompleted),
		planCourse(4, "PHYS 202", "State U", models.StatusCompleted),
	}
	// Only 8 credits land in group B.
	got := EvaluateRequirement(req, snapshotOf(courses, nil, plan), ModeCompleted)

	assert.False(t, got.IsComplete)
	require.Len(t, got.UnsatisfiedConstraints, 1)
	assert.Equal(t, int64(11), got.UnsatisfiedConstraints[0].Constraint.ID)
	assert.Equal(t, float64(8), got.UnsatisfiedConstraints[0].Actual)
}

func TestEvaluateRequirement_DanglingOptionSkipped(t *testing.T) {
	courses := []*models.Course{catalogCourse("ENGL 101", "State U", 3, 1000)}
	req := simpleRequirement(3,
		option("ENGL 101", "State U"),
		option("GHOST 999", "State U"), // not in catalog
	)
	plan := []*models.PlanCourse{
		planCourse(1, "ENGL 101", "State U", models.StatusCompleted),
		planCourse(2, "GHOST 999", "State U", models.StatusCompleted),
	}

	got := EvaluateRequirement(req, snapshotOf(courses, nil, plan), ModeCompleted)

	assert.True(t, got.IsComplete)
	assert.Len(t, got.Matched, 1, "unresolvable option must not match")
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "GHOST 999")
}

func TestEvaluateRequirement_CreditOverride(t *testing.T) {
	courses := []*models.Course{catalogCourse("ART 200", "State U", 3, 2000)}
	req := simpleRequirement(2, option("ART 200", "State U"))
	override := 2.0
	plan := []*models.PlanCourse{{
		ID: 1, CourseCode: "ART 200", Institution: "State U",
		Status: models.StatusCompleted, Credits: &override,
	}}

	got := EvaluateRequirement(req, snapshotOf(courses, nil, plan), ModeCompleted)
	assert.Equal(t, float64(2), got.CreditsCompleted)
	assert.True(t, got.IsComplete)
}

func TestEvaluateRequirement_Idempotent(t *testing.T) {
	courses := []*models.Course{
		catalogCourse("BIOS 101", "State U", 3, 1000, "has_lab"),
		catalogCourse("BIOS 201", "State U", 4, 2000),
	}
	req := simpleRequirement(6, option("BIOS 101", "State U"), option("BIOS 201", "State U"))
	require.NoError(t, req.AddConstraint(models.Constraint{
		Type:   models.ConstraintMinTagCourses,
		Params: models.TagCountParams{Tag: "has_lab", Courses: 1},
	}))
	plan := []*models.PlanCourse{
		planCourse(1, "BIOS 101", "State U", models.StatusCompleted),
		planCourse(2, "BIOS 201", "State U", models.StatusInProgress),
	}
	snap := snapshotOf(courses, nil, plan)

	first := EvaluateRequirement(req, snap, ModeCompleted)
	second := EvaluateRequirement(req, snap, ModeCompleted)
	assert.Equal(t, first, second)
}

func TestEvaluateRequirement_ConstraintPriorityOrder(t *testing.T) {
	courses := []*models.Course{catalogCourse("CS 101", "State U", 3, 1000)}
	req := simpleRequirement(3, option("CS 101", "State U"))
	require.NoError(t, req.AddConstraint(models.Constraint{
		ID: 2, Type: models.ConstraintCourses,
		Params: models.CourseCountParams{Min: iptr(1)}, Priority: 5,
	}))
	require.NoError(t, req.AddConstraint(models.Constraint{
		ID: 1, Type: models.ConstraintCredits,
		Params: models.CreditRangeParams{Min: fptr(1)}, Priority: 1,
	}))

	got := EvaluateRequirement(req, snapshotOf(courses, nil, nil), ModeCompleted)
	require.Len(t, got.Constraints, 2)
	assert.Equal(t, int64(1), got.Constraints[0].Constraint.ID, "lower priority evaluates first")
	assert.Equal(t, int64(2), got.Constraints[1].Constraint.ID)
}
