package analytics

import (
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

const (
	overloadThresholdPct      = 100.0
	atCapacityThresholdPct    = 80.0
	underutilizedThresholdPct = 50.0
)

type WorkloadInput struct {
	TeamTasks  []domain.Task
	Members    []domain.User
	PeriodDays int
	Now        time.Time
}

// ComputeWorkload distributes the team's open task load across members and
// days, producing the capacity heatmap. The period starts today and looks
// forward: capacity planning cares about work still due, so done tasks no
// longer consume capacity.
func ComputeWorkload(input WorkloadInput) contract.TeamWorkload {
	period := input.PeriodDays
	if period < 1 {
		period = 1
	}
	start := domain.DateOf(input.Now)
	end := start.AddDate(0, 0, period-1)

	// member -> day -> estimated hours due
	hoursByMemberDay := make(map[string]map[time.Time]float64)
	openAssigned := make(map[string]int)
	for i := range input.TeamTasks {
		t := &input.TeamTasks[i]
		if t.Status == domain.TaskDone || t.AssigneeID == nil {
			continue
		}
		member := *t.AssigneeID
		openAssigned[member]++
		if t.DueDate == nil {
			continue
		}
		due := domain.DateOf(*t.DueDate)
		if due.Before(start) || due.After(end) {
			continue
		}
		days := hoursByMemberDay[member]
		if days == nil {
			days = make(map[time.Time]float64)
			hoursByMemberDay[member] = days
		}
		days[due] += t.EstimatedHours
	}

	result := contract.TeamWorkload{
		Members: make([]contract.UserWorkload, 0, len(input.Members)),
	}

	var allocationSum float64
	var allocationCells int
	for i := range input.Members {
		m := &input.Members[i]
		capacity := m.CapacityHours()

		member := contract.UserWorkload{
			UserID:         m.ID,
			TaskCount:      openAssigned[m.ID],
			HoursCapacity:  capacity * float64(period),
			Status:         domain.WorkloadAvailable,
			DailyBreakdown: make([]contract.DayLoad, 0, period),
		}

		peak := 0.0
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			hours := hoursByMemberDay[m.ID][day]
			allocation := hours / capacity * 100
			member.HoursAllocated += hours
			member.DailyBreakdown = append(member.DailyBreakdown, contract.DayLoad{
				Date:       day.Format("2006-01-02"),
				Allocation: allocation,
				Hours:      hours,
			})
			if allocation > peak {
				peak = allocation
			}
			allocationSum += allocation
			allocationCells++
		}

		member.Allocation = member.HoursAllocated / member.HoursCapacity * 100
		switch {
		case peak >= overloadThresholdPct:
			member.Status = domain.WorkloadOverloaded
		case peak >= atCapacityThresholdPct:
			member.Status = domain.WorkloadAtCapacity
		}

		switch {
		case member.Status == domain.WorkloadOverloaded:
			result.OverloadedCount++
		case member.Allocation < underutilizedThresholdPct:
			result.UnderutilizedCount++
		}

		result.Members = append(result.Members, member)
	}

	if allocationCells > 0 {
		result.TeamAverage = allocationSum / float64(allocationCells)
	}
	return result
}
