package audit

import (
	"github.com/ecetin/gradpath/internal/app/models"
)

// TransferAttribution splits a student's completed credits into two
// independent tracks: progress at the current (home) institution and progress
// toward the program's target institution. The two percentages are measured
// against the same total and do not sum to anything in particular; a single
// course can legitimately contribute to both tracks via an equivalency.
type TransferAttribution struct {
	TargetInstitution  string  `json:"targetInstitution"`
	CurrentInstitution string  `json:"currentInstitution"`
	CurrentCredits     float64 `json:"currentCredits"`
	TransferCredits    float64 `json:"transferCredits"`
	CurrentPercentage  float64 `json:"currentPercentage"`
	TransferPercentage float64 `json:"transferPercentage"`
}

// ComputeTransferAttribution allocates completed credits between the current
// and transfer tracks.
//
// The current institution is the explicit override when given; otherwise the
// non-target institution with the greatest completed-credit sum, with equal
// sums broken lexicographically by institution name so the choice is
// deterministic.
//
// When the snapshot has no target institution both tracks report zero; there
// is nothing to attribute toward.
func ComputeTransferAttribution(snap *Snapshot, totalCreditsRequired float64, currentOverride string) TransferAttribution {
	if snap.TargetInstitution == "" {
		return TransferAttribution{}
	}

	attr := TransferAttribution{TargetInstitution: snap.TargetInstitution}

	// Course identities with a recorded equivalency into the target.
	eqToTarget := make(map[models.CourseKey]bool)
	for _, eq := range snap.Equivalencies {
		if eq.ToInstitution == snap.TargetInstitution {
			eqToTarget[eq.FromKey()] = true
		}
	}

	// Completed credit sums per institution; credit overrides apply, catalog
	// credits are the fallback, and courses absent from both are skipped.
	byInstitution := make(map[string]float64)
	type completed struct {
		pc      *models.PlanCourse
		credits float64
	}
	var done []completed
	for _, pc := range snap.PlanCourses {
		if pc.Status != models.StatusCompleted {
			continue
		}
		course := snap.Course(pc.Key())
		var credits float64
		switch {
		case pc.Credits != nil:
			credits = *pc.Credits
		case course != nil:
			credits = course.Credits
		default:
			continue
		}
		done = append(done, completed{pc: pc, credits: credits})
		byInstitution[pc.Institution] += credits
	}

	attr.CurrentInstitution = currentOverride
	if attr.CurrentInstitution == "" {
		var best float64
		for inst, sum := range byInstitution {
			if inst == snap.TargetInstitution {
				continue
			}
			if attr.CurrentInstitution == "" || sum > best ||
				(sum == best && inst < attr.CurrentInstitution) {
				attr.CurrentInstitution = inst
				best = sum
			}
		}
	}

	for _, d := range done {
		if d.pc.Institution == snap.TargetInstitution {
			// Credits earned at the target count only toward transfer.
			attr.TransferCredits += d.credits
			continue
		}
		if d.pc.Institution == attr.CurrentInstitution {
			attr.CurrentCredits += d.credits
		}
		if eqToTarget[d.pc.Key()] {
			attr.TransferCredits += d.credits
		}
	}

	attr.CurrentPercentage = trackPercentage(attr.CurrentCredits, totalCreditsRequired)
	attr.TransferPercentage = trackPercentage(attr.TransferCredits, totalCreditsRequired)
	return attr
}

// trackPercentage measures credits against the program total, clamped to
// [0, 100]. With a zero total any earned credit already means full progress.
func trackPercentage(credits, total float64) float64 {
	if total <= 0 {
		if credits > 0 {
			return 100
		}
		return 0
	}
	pct := 100 * credits / total
	if pct > 100 {
		pct = 100
	}
	return pct
}
