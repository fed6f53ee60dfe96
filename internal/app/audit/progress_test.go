package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateProgress_CapsOverflowPerRequirement(t *testing.T) {
	results := []RequirementResult{
		{Category: "Core", CreditsRequired: 12, CreditsCompleted: 20, IsComplete: true},
		{Category: "Electives", CreditsRequired: 9, CreditsCompleted: 3, CreditsRemaining: 6},
	}

	got := AggregateProgress(results)

	assert.Equal(t, float64(21), got.TotalCreditsRequired)
	// 20 earned in Core counts as 12; overflow never spills into Electives.
	assert.Equal(t, float64(15), got.TotalCreditsEarned)
	assert.Equal(t, float64(6), got.RemainingCredits)
	require.Len(t, got.UnmetRequirements, 1)
	assert.Equal(t, "Electives", got.UnmetRequirements[0].Category)
	assert.Equal(t, float64(6), got.UnmetRequirements[0].CreditsNeeded)
}

func TestAggregateProgress_PercentageBounds(t *testing.T) {
	tests := []struct {
		name    string
		results []RequirementResult
		want    float64
	}{
		{
			"zero requirements is fully complete",
			nil,
			100,
		},
		{
			"zero-credit requirements only",
			[]RequirementResult{{Category: "Seminar", CreditsRequired: 0, IsComplete: true}},
			100,
		},
		{
			"halfway",
			[]RequirementResult{{Category: "Core", CreditsRequired: 10, CreditsCompleted: 5}},
			50,
		},
		{
			"over-completion stays at 100",
			[]RequirementResult{{Category: "Core", CreditsRequired: 10, CreditsCompleted: 50, IsComplete: true}},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateProgress(tt.results)
			assert.Equal(t, tt.want, got.CompletionPercentage)
			assert.GreaterOrEqual(t, got.CompletionPercentage, float64(0))
			assert.LessOrEqual(t, got.CompletionPercentage, float64(100))
		})
	}
}

func TestAggregateProgress_UnmetOrderFollowsInput(t *testing.T) {
	results := []RequirementResult{
		{Category: "Core", CreditsRequired: 10, CreditsCompleted: 10, IsComplete: true},
		{Category: "Electives", CreditsRequired: 6, CreditsRemaining: 6},
		{Category: "Capstone", CreditsRequired: 3, CreditsRemaining: 3},
	}

	got := AggregateProgress(results)
	require.Len(t, got.UnmetRequirements, 2)
	assert.Equal(t, "Electives", got.UnmetRequirements[0].Category)
	assert.Equal(t, "Capstone", got.UnmetRequirements[1].Category)
}
