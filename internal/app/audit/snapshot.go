// Package audit implements the degree-audit computation engine: constraint
// evaluation, per-requirement satisfaction, progress aggregation, and
// transfer attribution. Everything in this package is pure and synchronous;
// it operates over an in-memory Snapshot assembled by the caller and never
// performs I/O. Evaluating the same snapshot twice yields identical results.
package audit

import (
	"github.com/ecetin/gradpath/internal/app/models"
)

// Mode selects which plan-course statuses count during evaluation.
type Mode string

const (
	// ModeCompleted counts only completed courses (the default audit).
	ModeCompleted Mode = "completed"
	// ModeProjected also counts in-progress and planned courses, for
	// "on track" projections.
	ModeProjected Mode = "projected"
)

// countsIn reports whether a course with the given status participates in an
// evaluation under the mode.
func (m Mode) countsIn(status models.CourseStatus) bool {
	if m == ModeProjected {
		return true
	}
	return status == models.StatusCompleted
}

// Snapshot is the frozen input of one audit run: the requirement model for a
// program version, the student's plan courses, the slice of the catalog they
// reference, and the equivalency records toward the target institution.
type Snapshot struct {
	Courses           map[models.CourseKey]*models.Course
	Requirements      []*models.Requirement
	PlanCourses       []*models.PlanCourse
	TargetInstitution string
	Equivalencies     []*models.Equivalency
}

// Course resolves a catalog identity inside the snapshot, nil when absent
func (s *Snapshot) Course(key models.CourseKey) *models.Course {
	return s.Courses[key]
}

// MatchedCourse pairs a plan course with the catalog course it resolved to
// and the requirement group whose option pool admitted it.
type MatchedCourse struct {
	Plan      *models.PlanCourse
	Course    *models.Course
	GroupName string
}

// Credits returns the plan-level credit override when present, otherwise the
// catalog course's credit value.
func (m MatchedCourse) Credits() float64 {
	return m.Plan.CreditsOr(m.Course.Credits)
}
