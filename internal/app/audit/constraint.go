package audit

import (
	"fmt"

	"github.com/ecetin/gradpath/internal/app/models"
)

// ConstraintResult is the outcome of evaluating one constraint against the
// courses inside its scope.
type ConstraintResult struct {
	Constraint  models.Constraint `json:"constraint"`
	Satisfied   bool              `json:"satisfied"`
	ConfigError bool              `json:"configError"`
	Actual      float64           `json:"actual"`
	Detail      string            `json:"detail"`
}

// inScope applies the constraint's scope filter to a matched course. The
// group filter keeps only courses resolved from that group's pool; the
// subject filter keeps only courses whose subject prefix is listed.
func inScope(scope models.ConstraintScope, m MatchedCourse) bool {
	if scope.GroupName != "" && m.GroupName != scope.GroupName {
		return false
	}
	if len(scope.SubjectCodes) > 0 {
		subject := m.Course.Subject()
		found := false
		for _, s := range scope.SubjectCodes {
			if s == subject {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// EvaluateConstraint checks one constraint against the matched courses of its
// requirement. Scope and status filtering happen here: matched is the full
// matched set of the requirement, and only courses inside the constraint's
// scope whose status counts under the mode are considered.
//
// Inverted bounds (min > max) make a constraint unsatisfiable for every
// matched set, including the empty one; the result is flagged as a
// configuration error rather than an evaluation failure.
func EvaluateConstraint(c models.Constraint, matched []MatchedCourse, mode Mode) ConstraintResult {
	res := ConstraintResult{Constraint: c}

	var scoped []MatchedCourse
	for _, m := range matched {
		if !mode.countsIn(m.Plan.Status) {
			continue
		}
		if !inScope(c.Scope, m) {
			continue
		}
		scoped = append(scoped, m)
	}

	switch p := c.Params.(type) {
	case models.CreditRangeParams:
		if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
			res.ConfigError = true
			res.Detail = fmt.Sprintf("inverted credit bounds: min %v > max %v", *p.Min, *p.Max)
			return res
		}
		sum := creditSum(scoped)
		res.Actual = sum
		res.Satisfied = (p.Min == nil || sum >= *p.Min) && (p.Max == nil || sum <= *p.Max)
		res.Detail = fmt.Sprintf("%v credits in scope", sum)

	case models.CourseCountParams:
		if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
			res.ConfigError = true
			res.Detail = fmt.Sprintf("inverted course bounds: min %d > max %d", *p.Min, *p.Max)
			return res
		}
		n := len(scoped)
		res.Actual = float64(n)
		res.Satisfied = (p.Min == nil || n >= *p.Min) && (p.Max == nil || n <= *p.Max)
		res.Detail = fmt.Sprintf("%d courses in scope", n)

	case models.LevelCountParams:
		n := 0
		for _, m := range scoped {
			if m.Course.Level >= p.Level {
				n++
			}
		}
		res.Actual = float64(n)
		res.Satisfied = n >= p.Courses
		res.Detail = fmt.Sprintf("%d courses at level %d or above", n, p.Level)

	case models.TagCountParams:
		n := 0
		for _, m := range scoped {
			if m.Course.HasTag(p.Tag) {
				n++
			}
		}
		res.Actual = float64(n)
		res.Satisfied = n >= p.Courses
		res.Detail = fmt.Sprintf("%d courses tagged %q", n, p.Tag)

	case models.TagCreditCapParams:
		var sum float64
		for _, m := range scoped {
			if m.Course.HasTag(p.Tag) {
				sum += m.Credits()
			}
		}
		res.Actual = sum
		res.Satisfied = sum <= p.Credits
		res.Detail = fmt.Sprintf("%v credits tagged %q", sum, p.Tag)

	default:
		// Unknown or missing params: configuration error, never satisfied.
		res.ConfigError = true
		res.Detail = fmt.Sprintf("constraint %d has no usable params for type %s", c.ID, c.Type)
	}

	return res
}

func creditSum(matched []MatchedCourse) float64 {
	var sum float64
	for _, m := range matched {
		sum += m.Credits()
	}
	return sum
}
