package analytics

import (
	"testing"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestVelocitySubScore(t *testing.T) {
	cases := []struct {
		name    string
		metrics contract.VelocityMetrics
		want    float64
	}{
		{"down", contract.VelocityMetrics{Trend: domain.TrendDown}, 40},
		{"stable", contract.VelocityMetrics{Trend: domain.TrendStable}, 60},
		{"up", contract.VelocityMetrics{Trend: domain.TrendUp}, 80},
		{
			"up and beating team",
			contract.VelocityMetrics{Trend: domain.TrendUp, AverageVelocity: 2, TeamAverageVelocity: 1},
			100,
		},
		{
			"stable with bonus",
			contract.VelocityMetrics{Trend: domain.TrendStable, AverageVelocity: 1.5, TeamAverageVelocity: 1.5},
			80,
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, VelocitySubScore(tc.metrics), tc.name)
	}
}

func TestQualitySubScore(t *testing.T) {
	assert.Equal(t, 100.0, QualitySubScore(nil))

	bottlenecks := []contract.Bottleneck{
		{Impact: domain.ImpactHigh},
		{Impact: domain.ImpactMedium},
		{Impact: domain.ImpactMedium},
	}
	assert.Equal(t, 75.0, QualitySubScore(bottlenecks))
}

func TestQualitySubScore_FloorsAtZero(t *testing.T) {
	var bottlenecks []contract.Bottleneck
	for i := 0; i < 10; i++ {
		bottlenecks = append(bottlenecks, contract.Bottleneck{Impact: domain.ImpactHigh})
	}
	assert.Equal(t, 0.0, QualitySubScore(bottlenecks))
}
