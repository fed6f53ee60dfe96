package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecetin/gradpath/internal/app/models"
)

// Report is the full output of one audit run: per-requirement results, the
// aggregate progress summary, transfer attribution, and the plan courses no
// requirement pool claimed.
type Report struct {
	EvaluationID string    `json:"evaluationId"`
	Mode         Mode      `json:"mode"`
	GeneratedAt  time.Time `json:"generatedAt"`

	Requirements []RequirementResult  `json:"requirements"`
	Summary      ProgressSummary      `json:"summary"`
	Transfer     TransferAttribution  `json:"transfer"`
	Unmatched    []*models.PlanCourse `json:"unmatched,omitempty"`
}

// Evaluate runs the whole audit over a snapshot. The computation itself is
// deterministic for a given snapshot; EvaluationID and GeneratedAt are
// per-run metadata for tracing.
//
// Plan courses that no requirement pool claims end up in Unmatched rather
// than being dropped; a stale requirement_category on a plan course never
// loses the course.
func Evaluate(snap *Snapshot, mode Mode, currentInstitutionOverride string) *Report {
	report := &Report{
		EvaluationID: uuid.NewString(),
		Mode:         mode,
		GeneratedAt:  time.Now().UTC(),
	}

	claimed := make(map[int64]bool)
	for _, req := range snap.Requirements {
		result := EvaluateRequirement(req, snap, mode)
		for _, m := range result.Matched {
			claimed[m.Plan.ID] = true
		}
		report.Requirements = append(report.Requirements, result)
	}

	for _, pc := range snap.PlanCourses {
		if !claimed[pc.ID] {
			report.Unmatched = append(report.Unmatched, pc)
		}
	}

	report.Summary = AggregateProgress(report.Requirements)
	report.Transfer = ComputeTransferAttribution(snap, report.Summary.TotalCreditsRequired, currentInstitutionOverride)
	return report
}
