package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecetin/gradpath/internal/app/models"
)

func TestComputeTransferAttribution_EquivalencyCountsBothTracks(t *testing.T) {
	// MATH101 at Community College has an equivalency to State U: its 3
	// credits land on both tracks, not a combined 6 on either.
	courses := []*models.Course{catalogCourse("MATH101", "Community College", 3, 1000)}
	plan := []*models.PlanCourse{planCourse(1, "MATH101", "Community College", models.StatusCompleted)}
	snap := snapshotOf(courses, nil, plan)
	snap.TargetInstitution = "State U"
	snap.Equivalencies = []*models.Equivalency{
		{FromCourseCode: "MATH101", FromInstitution: "Community College", ToInstitution: "State U"},
	}

	got := ComputeTransferAttribution(snap, 60, "")

	assert.Equal(t, "Community College", got.CurrentInstitution)
	assert.Equal(t, float64(3), got.CurrentCredits)
	assert.Equal(t, float64(3), got.TransferCredits)
	assert.Equal(t, 100*3.0/60.0, got.CurrentPercentage)
	assert.Equal(t, 100*3.0/60.0, got.TransferPercentage)
}

func TestComputeTransferAttribution_TargetCoursesOnlyTransfer(t *testing.T) {
	courses := []*models.Course{
		catalogCourse("ENGL 101", "State U", 3, 1000),
		catalogCourse("HIST 101", "City College", 3, 1000),
	}
	plan := []*models.PlanCourse{
		planCourse(1, "ENGL 101", "State U", models.StatusCompleted),
		planCourse(2, "HIST 101", "City College", models.StatusCompleted),
	}
	snap := snapshotOf(courses, nil, plan)
	snap.TargetInstitution = "State U"

	got := ComputeTransferAttribution(snap, 30, "")

	assert.Equal(t, "City College", got.CurrentInstitution)
	assert.Equal(t, float64(3), got.CurrentCredits)
	assert.Equal(t, float64(3), got.TransferCredits, "target-institution credits count only toward transfer")
}

func TestComputeTransferAttribution_CurrentInstitutionSelection(t *testing.T) {
	courses := []*models.Course{
		catalogCourse("A 101", "Alpha College", 3, 1000),
		catalogCourse("B 101", "Beta College", 6, 1000),
		catalogCourse("B 102", "Beta College", 3, 1000),
		catalogCourse("C 101", "Alpha College", 6, 1000),
	}

	t.Run("highest completed credits wins", func(t *testing.T) {
		plan := []*models.PlanCourse{
			planCourse(1, "A 101", "Alpha College", models.StatusCompleted),
			planCourse(2, "B 101", "Beta College", models.StatusCompleted),
		}
		snap := snapshotOf(courses, nil, plan)
		snap.TargetInstitution = "State U"
		got := ComputeTransferAttribution(snap, 60, "")
		assert.Equal(t, "Beta College", got.CurrentInstitution)
	})

	t.Run("equal sums break lexicographically", func(t *testing.T) {
		plan := []*models.PlanCourse{
			planCourse(1, "B 101", "Beta College", models.StatusCompleted),
			planCourse(2, "C 101", "Alpha College", models.StatusCompleted),
		}
		snap := snapshotOf(courses, nil, plan)
		snap.TargetInstitution = "State U"
		got := ComputeTransferAttribution(snap, 60, "")
		assert.Equal(t, "Alpha College", got.CurrentInstitution)
	})

	t.Run("explicit override respected", func(t *testing.T) {
		plan := []*models.PlanCourse{
			planCourse(1, "A 101", "Alpha College", models.StatusCompleted),
			planCourse(2, "B 101", "Beta College", models.StatusCompleted),
		}
		snap := snapshotOf(courses, nil, plan)
		snap.TargetInstitution = "State U"
		got := ComputeTransferAttribution(snap, 60, "Alpha College")
		assert.Equal(t, "Alpha College", got.CurrentInstitution)
		assert.Equal(t, float64(3), got.CurrentCredits)
	})

	t.Run("in-progress courses do not count", func(t *testing.T) {
		plan := []*models.PlanCourse{
			planCourse(1, "A 101", "Alpha College", models.StatusCompleted),
			planCourse(2, "B 101", "Beta College", models.StatusInProgress),
			planCourse(3, "B 102", "Beta College", models.StatusPlanned),
		}
		snap := snapshotOf(courses, nil, plan)
		snap.TargetInstitution = "State U"
		got := ComputeTransferAttribution(snap, 60, "")
		assert.Equal(t, "Alpha College", got.CurrentInstitution)
		assert.Equal(t, float64(3), got.CurrentCredits)
	})
}

func TestComputeTransferAttribution_NoTargetInstitution(t *testing.T) {
	courses := []*models.Course{catalogCourse("A 101", "Alpha College", 3, 1000)}
	plan := []*models.PlanCourse{planCourse(1, "A 101", "Alpha College", models.StatusCompleted)}
	snap := snapshotOf(courses, nil, plan)

	got := ComputeTransferAttribution(snap, 60, "")

	assert.Zero(t, got.CurrentPercentage)
	assert.Zero(t, got.TransferPercentage)
	assert.Zero(t, got.CurrentCredits)
	assert.Zero(t, got.TransferCredits)
}

func TestComputeTransferAttribution_PercentageClamped(t *testing.T) {
	courses := []*models.Course{catalogCourse("A 101", "Alpha College", 90, 1000)}
	plan := []*models.PlanCourse{planCourse(1, "A 101", "Alpha College", models.StatusCompleted)}
	snap := snapshotOf(courses, nil, plan)
	snap.TargetInstitution = "State U"

	got := ComputeTransferAttribution(snap, 60, "")
	assert.Equal(t, float64(100), got.CurrentPercentage)
}

func TestEvaluate_FullReport(t *testing.T) {
	courses := []*models.Course{
		catalogCourse("BIOS 101", "Community College", 3, 1000),
		catalogCourse("ELEC 999", "Community College", 3, 1000),
	}
	req := simpleRequirement(3, option("BIOS 101", "Community College"))
	plan := []*models.PlanCourse{
		planCourse(1, "BIOS 101", "Community College", models.StatusCompleted),
		planCourse(2, "ELEC 999", "Community College", models.StatusCompleted),
	}
	snap := snapshotOf(courses, []*models.Requirement{req}, plan)
	snap.TargetInstitution = "State U"

	report := Evaluate(snap, ModeCompleted, "")

	assert.NotEmpty(t, report.EvaluationID)
	assert.Len(t, report.Requirements, 1)
	assert.True(t, report.Requirements[0].IsComplete)
	assert.Equal(t, float64(100), report.Summary.CompletionPercentage)
	// The elective no pool claims surfaces as unmatched, never dropped.
	assert.Len(t, report.Unmatched, 1)
	assert.Equal(t, int64(2), report.Unmatched[0].ID)
}
