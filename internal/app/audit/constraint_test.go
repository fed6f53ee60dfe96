package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecetin/gradpath/internal/app/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func matchedCourse(code, institution string, credits float64, level int, status models.CourseStatus, group string, tags ...string) MatchedCourse {
	return MatchedCourse{
		Plan: &models.PlanCourse{
			CourseCode:  code,
			Institution: institution,
			Status:      status,
		},
		Course: &models.Course{
			Code:        code,
			Institution: institution,
			Credits:     credits,
			Level:       level,
			Tags:        tags,
		},
		GroupName: group,
	}
}

func TestEvaluateConstraint_CreditRange(t *testing.T) {
	matched := []MatchedCourse{
		matchedCourse("BIOS 101", "State U", 3, 1000, models.StatusCompleted, "Eligible"),
		matchedCourse("BIOS 102", "State U", 3, 1000, models.StatusCompleted, "Eligible"),
		matchedCourse("BIOS 201", "State U", 4, 2000, models.StatusInProgress, "Eligible"),
	}

	tests := []struct {
		name          string
		params        models.CreditRangeParams
		mode          Mode
		wantSatisfied bool
		wantActual    float64
	}{
		{"within range completed only", models.CreditRangeParams{Min: fptr(5), Max: fptr(10)}, ModeCompleted, true, 6},
		{"below min", models.CreditRangeParams{Min: fptr(10)}, ModeCompleted, false, 6},
		{"no upper bound", models.CreditRangeParams{Min: fptr(6)}, ModeCompleted, true, 6},
		{"no lower bound over max", models.CreditRangeParams{Max: fptr(5)}, ModeCompleted, false, 6},
		{"projected mode counts in-progress", models.CreditRangeParams{Min: fptr(10)}, ModeProjected, true, 10},
		{"no bounds at all", models.CreditRangeParams{}, ModeCompleted, true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Constraint{Type: models.ConstraintCredits, Params: tt.params}
			got := EvaluateConstraint(c, matched, tt.mode)
			assert.Equal(t, tt.wantSatisfied, got.Satisfied)
			assert.Equal(t, tt.wantActual, got.Actual)
			assert.False(t, got.ConfigError)
		})
	}
}

func TestEvaluateConstraint_InvertedBounds(t *testing.T) {
	matched := []MatchedCourse{
		matchedCourse("MATH 101", "State U", 3, 1000, models.StatusCompleted, "Eligible"),
	}

	tests := []struct {
		name       string
		constraint models.Constraint
		matched    []MatchedCourse
	}{
		{
			"inverted credits with courses",
			models.Constraint{Type: models.ConstraintCredits, Params: models.CreditRangeParams{Min: fptr(10), Max: fptr(5)}},
			matched,
		},
		{
			"inverted credits empty set",
			models.Constraint{Type: models.ConstraintCredits, Params: models.CreditRangeParams{Min: fptr(10), Max: fptr(5)}},
			nil,
		},
		{
			"inverted course count",
			models.Constraint{Type: models.ConstraintCourses, Params: models.CourseCountParams{Min: iptr(4), Max: iptr(2)}},
			matched,
		},
		{
			"inverted course count empty set",
			models.Constraint{Type: models.ConstraintCourses, Params: models.CourseCountParams{Min: iptr(4), Max: iptr(2)}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateConstraint(tt.constraint, tt.matched, ModeCompleted)
			// Never vacuously true, not even on an empty matched set.
			assert.False(t, got.Satisfied)
			assert.True(t, got.ConfigError)
		})
	}
}

func TestEvaluateConstraint_CourseCount(t *testing.T) {
	matched := []MatchedCourse{
		matchedCourse("CHEM 101", "State U", 4, 1000, models.StatusCompleted, "A"),
		matchedCourse("CHEM 102", "State U", 4, 1000, models.StatusCompleted, "A"),
		matchedCourse("CHEM 301", "State U", 3, 3000, models.StatusPlanned, "A"),
	}

	c := models.Constraint{Type: models.ConstraintCourses, Params: models.CourseCountParams{Min: iptr(2)}}
	got := EvaluateConstraint(c, matched, ModeCompleted)
	assert.True(t, got.Satisfied)
	assert.Equal(t, float64(2), got.Actual)

	c.Params = models.CourseCountParams{Min: iptr(3)}
	got = EvaluateConstraint(c, matched, ModeCompleted)
	assert.False(t, got.Satisfied)

	got = EvaluateConstraint(c, matched, ModeProjected)
	assert.True(t, got.Satisfied, "planned course should count in projected mode")
}

func TestEvaluateConstraint_MinCoursesAtLevel(t *testing.T) {
	matched := []MatchedCourse{
		matchedCourse("CS 101", "State U", 3, 1000, models.StatusCompleted, "Eligible"),
		matchedCourse("CS 301", "State U", 3, 3000, models.StatusCompleted, "Eligible"),
		matchedCourse("CS 401", "State U", 3, 4000, models.StatusCompleted, "Eligible"),
	}

	c := models.Constraint{
		Type:   models.ConstraintMinCoursesAtLevel,
		Params: models.LevelCountParams{Level: 3000, Courses: 2},
	}
	got := EvaluateConstraint(c, matched, ModeCompleted)
	assert.True(t, got.Satisfied)
	assert.Equal(t, float64(2), got.Actual)

	c.Params = models.LevelCountParams{Level: 3000, Courses: 3}
	assert.False(t, EvaluateConstraint(c, matched, ModeCompleted).Satisfied)
}

func TestEvaluateConstraint_MinTagCourses(t *testing.T) {
	matched := []MatchedCourse{
		matchedCourse("BIOS 210", "State U", 4, 2000, models.StatusCompleted, "Eligible", "has_lab"),
		matchedCourse("BIOS 220", "State U", 4, 2000, models.StatusCompleted, "Eligible"),
	}

	c := models.Constraint{
		Type:   models.ConstraintMinTagCourses,
		Params: models.TagCountParams{Tag: "has_lab", Courses: 1},
	}
	assert.True(t, EvaluateConstraint(c, matched, ModeCompleted).Satisfied)

	c.Params = models.TagCountParams{Tag: "has_lab", Courses: 2}
	assert.False(t, EvaluateConstraint(c, matched, ModeCompleted).Satisfied)
}

func TestEvaluateConstraint_MaxTagCredits(t *testing.T) {
	// Research credits sum to 9, over a cap of 7.
	matched := []MatchedCourse{
		matchedCourse("BIOS 490", "State U", 4, 4000, models.StatusCompleted, "Eligible", "research"),
		matchedCourse("BIOS 491", "State U", 5, 4000, models.StatusCompleted, "Eligible", "research"),
		matchedCourse("BIOS 300", "State U", 3, 3000, models.StatusCompleted, "Eligible"),
	}

	c := models.Constraint{
		Type:   models.ConstraintMaxTagCredits,
		Params: models.TagCreditCapParams{Tag: "research", Credits: 7},
	}
	got := EvaluateConstraint(c, matched, ModeCompleted)
	assert.False(t, got.Satisfied)
	assert.Equal(t, float64(9), got.Actual)

	c.Params = models.TagCreditCapParams{Tag: "research", Credits: 9}
	assert.True(t, EvaluateConstraint(c, matched, ModeCompleted).Satisfied)
}

func TestEvaluateConstraint_ScopeFilters(t *testing.T) {
	matched := []MatchedCourse{
		matchedCourse("BIOS 101", "State U", 3, 1000, models.StatusCompleted, "A"),
		matchedCourse("CHEM 101", "State U", 4, 1000, models.StatusCompleted, "B"),
		matchedCourse("BIOS 201", "State U", 4, 2000, models.StatusCompleted, "B"),
	}

	t.Run("group scope sees only its group", func(t *testing.T) {
		c := models.Constraint{
			Type:   models.ConstraintCredits,
			Params: models.CreditRangeParams{Min: fptr(1)},
			Scope:  models.ConstraintScope{GroupName: "A"},
		}
		got := EvaluateConstraint(c, matched, ModeCompleted)
		assert.Equal(t, float64(3), got.Actual)
	})

	t.Run("subject scope filters by prefix", func(t *testing.T) {
		c := models.Constraint{
			Type:   models.ConstraintCredits,
			Params: models.CreditRangeParams{Min: fptr(1)},
			Scope:  models.ConstraintScope{SubjectCodes: []string{"BIOS"}},
		}
		got := EvaluateConstraint(c, matched, ModeCompleted)
		assert.Equal(t, float64(7), got.Actual)
	})

	t.Run("group and subject scopes combine", func(t *testing.T) {
		c := models.Constraint{
			Type:   models.ConstraintCourses,
			Params: models.CourseCountParams{Min: iptr(1)},
			Scope:  models.ConstraintScope{GroupName: "B", SubjectCodes: []string{"BIOS"}},
		}
		got := EvaluateConstraint(c, matched, ModeCompleted)
		assert.Equal(t, float64(1), got.Actual)
	})
}

func TestEvaluateConstraint_MissingParams(t *testing.T) {
	c := models.Constraint{Type: models.ConstraintCredits}
	got := EvaluateConstraint(c, nil, ModeCompleted)
	assert.False(t, got.Satisfied)
	assert.True(t, got.ConfigError)
}
