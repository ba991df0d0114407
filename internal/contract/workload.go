package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

type WorkloadRequest struct {
	TeamID     string
	PeriodDays int
	Now        *time.Time
}

func NewWorkloadRequest(teamID string) WorkloadRequest {
	return WorkloadRequest{
		TeamID:     teamID,
		PeriodDays: 7,
	}
}

// DayLoad is one member-day cell of the capacity heatmap.
type DayLoad struct {
	Date       string  `json:"date"`
	Allocation float64 `json:"allocation"`
	Hours      float64 `json:"hours"`
}

// UserWorkload summarizes one member's load over the period.
// Allocation may exceed 100 (overload) but is never negative.
type UserWorkload struct {
	UserID         string                `json:"userId"`
	Allocation     float64               `json:"allocation"`
	TaskCount      int                   `json:"taskCount"`
	HoursAllocated float64               `json:"hoursAllocated"`
	HoursCapacity  float64               `json:"hoursCapacity"`
	Status         domain.WorkloadStatus `json:"status"`
	DailyBreakdown []DayLoad             `json:"dailyBreakdown"`
}

type TeamWorkload struct {
	Members            []UserWorkload `json:"members"`
	TeamAverage        float64        `json:"teamAverage"`
	OverloadedCount    int            `json:"overloadedCount"`
	UnderutilizedCount int            `json:"underutilizedCount"`
}
