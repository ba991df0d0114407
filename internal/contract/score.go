package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// ScoreRequest asks for a user's execution score. Now is optional and
// defaults to the current time; supplying it makes replies reproducible.
type ScoreRequest struct {
	UserID     string
	WindowDays int
	Now        *time.Time
}

func NewScoreRequest(userID string) ScoreRequest {
	return ScoreRequest{
		UserID:     userID,
		WindowDays: 14,
	}
}

// ScoreBreakdown exposes the sub-signals blended into the headline score.
type ScoreBreakdown struct {
	CompletionRate float64 `json:"completionRate"`
	OnTimeRate     float64 `json:"onTimeRate"`
	VelocityScore  float64 `json:"velocityScore"`
	QualityScore   float64 `json:"qualityScore"`
}

type Streak struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// ExecutionScore is the single-number productivity summary for one user.
// Current is always within [0, 100].
type ExecutionScore struct {
	Current    float64               `json:"current"`
	Trend      domain.TrendDirection `json:"trend"`
	VsLastWeek float64               `json:"vsLastWeek"`
	Breakdown  ScoreBreakdown        `json:"breakdown"`
	Streak     Streak                `json:"streak"`
}
