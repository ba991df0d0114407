package analytics

import (
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// VelocitySubScore maps velocity metrics onto the 0-100 sub-score the
// execution score blends in. The trend sets the base; beating the team
// average earns a bonus.
func VelocitySubScore(m contract.VelocityMetrics) float64 {
	var base float64
	switch m.Trend {
	case domain.TrendUp:
		base = 80
	case domain.TrendDown:
		base = 40
	default:
		base = 60
	}
	if m.AverageVelocity > 0 && m.AverageVelocity >= m.TeamAverageVelocity {
		base += 20
	}
	return clampScore(base)
}

// QualitySubScore derives the 0-100 quality sub-score from bottleneck
// severity: each high-impact finding costs 15 points, each medium 5.
func QualitySubScore(bottlenecks []contract.Bottleneck) float64 {
	score := 100.0
	for _, b := range bottlenecks {
		switch b.Impact {
		case domain.ImpactHigh:
			score -= 15
		case domain.ImpactMedium:
			score -= 5
		}
	}
	if score < 0 {
		return 0
	}
	return score
}
