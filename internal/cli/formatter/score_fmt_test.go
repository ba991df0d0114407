package formatter

import (
	"testing"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatScore_IncludesBreakdownAndStreak(t *testing.T) {
	score := &contract.ExecutionScore{
		Current:    72,
		Trend:      domain.TrendUp,
		VsLastWeek: 12.5,
		Breakdown: contract.ScoreBreakdown{
			CompletionRate: 70,
			OnTimeRate:     85.7,
			VelocityScore:  80,
			QualityScore:   95,
		},
		Streak: contract.Streak{Current: 4, Best: 9},
	}

	out := FormatScore(score)
	assert.Contains(t, out, "72")
	assert.Contains(t, out, "+12.5% vs last week")
	assert.Contains(t, out, "85.7%")
	assert.Contains(t, out, "4 days")
	assert.Contains(t, out, "best 9")
}

func TestFormatScore_ZeroScore(t *testing.T) {
	score := &contract.ExecutionScore{Trend: domain.TrendStable}

	out := FormatScore(score)
	assert.Contains(t, out, "no change vs last week")
	assert.Contains(t, out, "0 days")
}

func TestFormatVelocity_IncludesDailyRows(t *testing.T) {
	m := &contract.VelocityMetrics{
		Daily: []contract.VelocityPoint{
			{Date: "2025-06-13", Completed: 2, Created: 1},
			{Date: "2025-06-14", Completed: 0, Created: 0},
		},
		AverageVelocity:     1.0,
		TeamAverageVelocity: 0.5,
		Trend:               domain.TrendDown,
	}

	out := FormatVelocity(m)
	assert.Contains(t, out, "1.00 tasks/day")
	assert.Contains(t, out, "team average 0.50")
	assert.Contains(t, out, "2025-06-13")
	assert.Contains(t, out, "2025-06-14")
}

func TestFormatBottlenecks_EmptyAndPopulated(t *testing.T) {
	assert.Contains(t, FormatBottlenecks(nil), "No bottlenecks detected")

	found := []contract.Bottleneck{
		{
			Type:            domain.BottleneckBlockedChain,
			Impact:          domain.ImpactHigh,
			Count:           3,
			Suggestion:      "Resolve the root blocker",
			AffectedTaskIDs: []string{"c", "b", "a"},
		},
	}
	out := FormatBottlenecks(found)
	assert.Contains(t, out, "Blocked chain")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "Resolve the root blocker")
	assert.Contains(t, out, "c, b, a")
}

func TestFormatBottlenecks_TruncatesLongIDLists(t *testing.T) {
	found := []contract.Bottleneck{
		{
			Type:            domain.BottleneckStalledTasks,
			Impact:          domain.ImpactMedium,
			Count:           7,
			Suggestion:      "Review stalled work",
			AffectedTaskIDs: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
	}
	out := FormatBottlenecks(found)
	assert.Contains(t, out, "+2 more")
}

func TestFormatWorkload_ShowsMembersAndCounts(t *testing.T) {
	w := &contract.TeamWorkload{
		Members: []contract.UserWorkload{
			{UserID: "ada", Allocation: 150, TaskCount: 4, HoursAllocated: 12, HoursCapacity: 8, Status: domain.WorkloadOverloaded},
			{UserID: "bob", Allocation: 25, TaskCount: 1, HoursAllocated: 2, HoursCapacity: 8, Status: domain.WorkloadAvailable},
		},
		TeamAverage:        87.5,
		OverloadedCount:    1,
		UnderutilizedCount: 1,
	}

	out := FormatWorkload(w)
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "Overloaded")
	assert.Contains(t, out, "150%")
	assert.Contains(t, out, "1 overloaded")
	assert.Contains(t, out, "spare capacity")
}
