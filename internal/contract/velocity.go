package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

type VelocityRequest struct {
	UserID     string
	TeamID     string
	WindowDays int
	Now        *time.Time
}

func NewVelocityRequest(userID string) VelocityRequest {
	return VelocityRequest{
		UserID:     userID,
		WindowDays: 14,
	}
}

// VelocityPoint is one calendar day of throughput. Date is YYYY-MM-DD so
// the series survives JSON round-trips without timezone drift.
type VelocityPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Created   int    `json:"created"`
}

type VelocityMetrics struct {
	Daily               []VelocityPoint       `json:"daily"`
	AverageVelocity     float64               `json:"averageVelocity"`
	TeamAverageVelocity float64               `json:"teamAverageVelocity"`
	Trend               domain.TrendDirection `json:"trend"`
}
