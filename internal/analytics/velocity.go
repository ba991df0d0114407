package analytics

import (
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// trendStableBand is the relative band within which first-half and
// second-half averages count as stable.
const trendStableBand = 0.05

type VelocityInput struct {
	Tasks      []domain.Task
	TeamTasks  []domain.Task
	TeamSize   int
	WindowDays int
	Now        time.Time
}

// ComputeVelocity aggregates completed/created counts into a daily series
// over the trailing window and derives the throughput trend.
func ComputeVelocity(input VelocityInput) contract.VelocityMetrics {
	window := input.WindowDays
	if window < 1 {
		window = 1
	}

	start := domain.DateOf(input.Now).AddDate(0, 0, -(window - 1))
	end := domain.DateOf(input.Now)

	completedByDay := make(map[time.Time]int)
	createdByDay := make(map[time.Time]int)
	for i := range input.Tasks {
		t := &input.Tasks[i]
		if t.CompletedAt != nil {
			completedByDay[domain.DateOf(*t.CompletedAt)]++
		}
		if !t.CreatedAt.IsZero() {
			createdByDay[domain.DateOf(t.CreatedAt)]++
		}
	}

	daily := make([]contract.VelocityPoint, 0, window)
	totalCompleted := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		point := contract.VelocityPoint{
			Date:      day.Format("2006-01-02"),
			Completed: completedByDay[day],
			Created:   createdByDay[day],
		}
		totalCompleted += point.Completed
		daily = append(daily, point)
	}

	teamCompleted := 0
	for i := range input.TeamTasks {
		t := &input.TeamTasks[i]
		if t.CompletedAt == nil {
			continue
		}
		day := domain.DateOf(*t.CompletedAt)
		if !day.Before(start) && !day.After(end) {
			teamCompleted++
		}
	}

	teamSize := input.TeamSize
	if teamSize < 1 {
		teamSize = 1
	}

	return contract.VelocityMetrics{
		Daily:               daily,
		AverageVelocity:     float64(totalCompleted) / float64(window),
		TeamAverageVelocity: float64(teamCompleted) / float64(teamSize) / float64(window),
		Trend:               velocityTrend(daily),
	}
}

// velocityTrend compares the first half of the window against the second.
// A simple linear split, not a regression; differences within ±5% are
// stable, and a window of fewer than 2 days cannot establish a trend.
func velocityTrend(daily []contract.VelocityPoint) domain.TrendDirection {
	if len(daily) < 2 {
		return domain.TrendStable
	}

	half := len(daily) / 2
	firstAvg := averageCompleted(daily[:half])
	secondAvg := averageCompleted(daily[half:])

	if firstAvg == 0 {
		if secondAvg > 0 {
			return domain.TrendUp
		}
		return domain.TrendStable
	}

	delta := (secondAvg - firstAvg) / firstAvg
	switch {
	case delta > trendStableBand:
		return domain.TrendUp
	case delta < -trendStableBand:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}

func averageCompleted(points []contract.VelocityPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range points {
		sum += p.Completed
	}
	return float64(sum) / float64(len(points))
}
