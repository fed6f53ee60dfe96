package audit

import (
	"fmt"

	"github.com/ecetin/gradpath/internal/app/models"
)

// RequirementResult is the per-requirement output of an audit run.
type RequirementResult struct {
	RequirementID     int64   `json:"requirementId"`
	Category          string  `json:"category"`
	IsComplete        bool    `json:"isComplete"`
	CreditsRequired   int     `json:"creditsRequired"`
	CreditsCompleted  float64 `json:"creditsCompleted"`
	CreditsInProgress float64 `json:"creditsInProgress"`
	CreditsPlanned    float64 `json:"creditsPlanned"`
	CreditsRemaining  float64 `json:"creditsRemaining"`

	// Constraints holds one result per attached constraint, evaluated under
	// the requested mode, ordered by priority (lower first).
	Constraints []ConstraintResult `json:"constraints"`
	// UnsatisfiedConstraints are the constraints blocking completion. These
	// are always evaluated against completed courses only, regardless of the
	// requested mode, because completion itself is defined over completed
	// courses.
	UnsatisfiedConstraints []ConstraintResult `json:"unsatisfiedConstraints"`

	Matched  []MatchedCourse `json:"matched"`
	Warnings []string        `json:"warnings,omitempty"`
}

// EvaluateRequirement audits one requirement against the plan courses in the
// snapshot.
//
// Matching is by pool membership: a plan course matches when its
// (code, institution) appears in some group's option pool and the catalog
// resolves that identity. Options pointing at courses missing from the
// catalog are skipped with a warning, never an error. When the same identity
// is listed in several groups, the first group in requirement order wins.
//
// A requirement with credits_required = 0 and no constraints is complete once
// at least one course from its pool is completed; with nothing demanded it
// still represents a marker course the program wants to see.
func EvaluateRequirement(req *models.Requirement, snap *Snapshot, mode Mode) RequirementResult {
	res := RequirementResult{
		RequirementID:   req.ID,
		Category:        req.Category,
		CreditsRequired: req.CreditsRequired,
	}

	// Index the option pools: catalog identity -> owning group name.
	poolGroup := make(map[models.CourseKey]string)
	for _, g := range req.Groups {
		for _, o := range g.Options {
			key := o.Key()
			if snap.Course(key) == nil {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("option %s@%s in group %q does not resolve to a catalog course; skipped",
						o.CourseCode, o.Institution, g.Name))
				continue
			}
			if _, seen := poolGroup[key]; !seen {
				poolGroup[key] = g.Name
			}
		}
	}

	for _, pc := range snap.PlanCourses {
		groupName, ok := poolGroup[pc.Key()]
		if !ok {
			continue
		}
		m := MatchedCourse{Plan: pc, Course: snap.Course(pc.Key()), GroupName: groupName}
		res.Matched = append(res.Matched, m)
		switch pc.Status {
		case models.StatusCompleted:
			res.CreditsCompleted += m.Credits()
		case models.StatusInProgress:
			res.CreditsInProgress += m.Credits()
		case models.StatusPlanned:
			res.CreditsPlanned += m.Credits()
		}
	}

	completedResults := evaluateConstraints(req, res.Matched, ModeCompleted)
	if mode == ModeCompleted {
		res.Constraints = completedResults
	} else {
		res.Constraints = evaluateConstraints(req, res.Matched, mode)
	}
	for _, cr := range completedResults {
		if !cr.Satisfied {
			res.UnsatisfiedConstraints = append(res.UnsatisfiedConstraints, cr)
		}
	}

	res.CreditsRemaining = float64(req.CreditsRequired) - res.CreditsCompleted
	if res.CreditsRemaining < 0 {
		res.CreditsRemaining = 0
	}

	if req.CreditsRequired == 0 && len(req.Constraints) == 0 {
		res.IsComplete = hasCompleted(res.Matched)
	} else {
		res.IsComplete = res.CreditsCompleted >= float64(req.CreditsRequired) &&
			len(res.UnsatisfiedConstraints) == 0
	}

	return res
}

// evaluateConstraints runs every constraint of the requirement in priority
// order (lower first, stable for equal priorities).
func evaluateConstraints(req *models.Requirement, matched []MatchedCourse, mode Mode) []ConstraintResult {
	ordered := make([]models.Constraint, len(req.Constraints))
	copy(ordered, req.Constraints)
	// Insertion sort keeps equal-priority constraints in attachment order.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Priority < ordered[j-1].Priority; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	var out []ConstraintResult
	for _, c := range ordered {
		out = append(out, EvaluateConstraint(c, matched, mode))
	}
	return out
}

func hasCompleted(matched []MatchedCourse) bool {
	for _, m := range matched {
		if m.Plan.Status == models.StatusCompleted {
			return true
		}
	}
	return false
}
