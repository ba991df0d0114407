package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

type BottleneckRequest struct {
	UserID string
	Now    *time.Time
}

func NewBottleneckRequest(userID string) BottleneckRequest {
	return BottleneckRequest{UserID: userID}
}

// Bottleneck is one detected structural blocking pattern, ranked by impact.
// Count always equals len(AffectedTaskIDs).
type Bottleneck struct {
	Type            domain.BottleneckType `json:"type"`
	Impact          domain.ImpactLevel    `json:"impact"`
	Count           int                   `json:"count"`
	Suggestion      string                `json:"suggestion"`
	AffectedTaskIDs []string              `json:"affectedTaskIds"`
}
