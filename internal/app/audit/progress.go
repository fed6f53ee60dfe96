package audit

// UnmetRequirement names a requirement category still blocking completion.
type UnmetRequirement struct {
	Category      string  `json:"category"`
	CreditsNeeded float64 `json:"creditsNeeded"`
}

// ProgressSummary rolls all requirement results of one plan into totals.
type ProgressSummary struct {
	TotalCreditsRequired float64            `json:"totalCreditsRequired"`
	TotalCreditsEarned   float64            `json:"totalCreditsEarned"`
	RemainingCredits     float64            `json:"remainingCredits"`
	CompletionPercentage float64            `json:"completionPercentage"`
	UnmetRequirements    []UnmetRequirement `json:"unmetRequirements"`
}

// AggregateProgress rolls up requirement results. Earned credits are capped
// per requirement at its credits_required: overflow inside one satisfied
// category never inflates the overall total. A program version with zero
// total required credits reports 100% complete; there is nothing left to
// demand of the student.
func AggregateProgress(results []RequirementResult) ProgressSummary {
	var summary ProgressSummary
	for _, r := range results {
		required := float64(r.CreditsRequired)
		summary.TotalCreditsRequired += required

		earned := r.CreditsCompleted
		if earned > required {
			earned = required
		}
		summary.TotalCreditsEarned += earned

		if !r.IsComplete {
			summary.UnmetRequirements = append(summary.UnmetRequirements, UnmetRequirement{
				Category:      r.Category,
				CreditsNeeded: r.CreditsRemaining,
			})
		}
	}

	summary.RemainingCredits = summary.TotalCreditsRequired - summary.TotalCreditsEarned
	if summary.RemainingCredits < 0 {
		summary.RemainingCredits = 0
	}

	if summary.TotalCreditsRequired <= 0 {
		summary.CompletionPercentage = 100
	} else {
		pct := 100 * summary.TotalCreditsEarned / summary.TotalCreditsRequired
		if pct > 100 {
			pct = 100
		}
		summary.CompletionPercentage = pct
	}

	return summary
}
