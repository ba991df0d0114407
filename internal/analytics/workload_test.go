package analytics

import (
	"testing"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id string, capacity float64) domain.User {
	return domain.User{ID: id, Name: id, TeamID: "team-1", DailyCapacityHours: capacity}
}

func dueTask(id, assignee string, hours float64, due int) domain.Task {
	d := testNow.AddDate(0, 0, due)
	return domain.Task{
		ID:             id,
		Status:         domain.TaskTodo,
		AssigneeID:     &assignee,
		EstimatedHours: hours,
		DueDate:        &d,
		UpdatedAt:      testNow,
	}
}

func TestComputeWorkload_OverloadedDay(t *testing.T) {
	// 3 tasks of 4 hours due today against an 8-hour capacity.
	tasks := []domain.Task{
		dueTask("t1", "u1", 4, 0),
		dueTask("t2", "u1", 4, 0),
		dueTask("t3", "u1", 4, 0),
	}
	workload := ComputeWorkload(WorkloadInput{
		TeamTasks:  tasks,
		Members:    []domain.User{member("u1", 8)},
		PeriodDays: 1,
		Now:        testNow,
	})

	require.Len(t, workload.Members, 1)
	m := workload.Members[0]
	assert.InDelta(t, 150.0, m.Allocation, 0.01)
	assert.Equal(t, domain.WorkloadOverloaded, m.Status)
	assert.Equal(t, 3, m.TaskCount)
	assert.InDelta(t, 12.0, m.HoursAllocated, 0.01)
	assert.InDelta(t, 8.0, m.HoursCapacity, 0.01)
	assert.Equal(t, 1, workload.OverloadedCount)
	assert.Equal(t, 0, workload.UnderutilizedCount)
}

func TestComputeWorkload_ZeroTasksMember(t *testing.T) {
	workload := ComputeWorkload(WorkloadInput{
		Members:    []domain.User{member("idle", 8)},
		PeriodDays: 5,
		Now:        testNow,
	})
	require.Len(t, workload.Members, 1)
	m := workload.Members[0]
	assert.Equal(t, 0.0, m.Allocation)
	assert.Equal(t, 0, m.TaskCount)
	assert.Equal(t, domain.WorkloadAvailable, m.Status)
	assert.Equal(t, 1, workload.UnderutilizedCount)
}

func TestComputeWorkload_AtCapacity(t *testing.T) {
	tasks := []domain.Task{
		dueTask("t1", "u1", 7, 0), // 87.5% of an 8h day
	}
	workload := ComputeWorkload(WorkloadInput{
		TeamTasks:  tasks,
		Members:    []domain.User{member("u1", 8)},
		PeriodDays: 1,
		Now:        testNow,
	})
	assert.Equal(t, domain.WorkloadAtCapacity, workload.Members[0].Status)
	assert.Equal(t, 0, workload.OverloadedCount)
}

func TestComputeWorkload_AllocationNeverNegative(t *testing.T) {
	tasks := []domain.Task{
		dueTask("t1", "u1", 0, 0),
		dueTask("t2", "u1", 3, 2),
	}
	workload := ComputeWorkload(WorkloadInput{
		TeamTasks:  tasks,
		Members:    []domain.User{member("u1", 8), member("u2", 8)},
		PeriodDays: 7,
		Now:        testNow,
	})
	for _, m := range workload.Members {
		assert.GreaterOrEqual(t, m.Allocation, 0.0)
		for _, day := range m.DailyBreakdown {
			assert.GreaterOrEqual(t, day.Allocation, 0.0, "member=%s day=%s", m.UserID, day.Date)
		}
	}
}

func TestComputeWorkload_DoneTasksFreeCapacity(t *testing.T) {
	done := dueTask("t1", "u1", 8, 0)
	done.MarkDone(testNow)
	workload := ComputeWorkload(WorkloadInput{
		TeamTasks:  []domain.Task{done},
		Members:    []domain.User{member("u1", 8)},
		PeriodDays: 1,
		Now:        testNow,
	})
	assert.Equal(t, 0.0, workload.Members[0].Allocation)
	assert.Equal(t, 0, workload.Members[0].TaskCount)
}

func TestComputeWorkload_PastDueOutsidePeriodIgnored(t *testing.T) {
	tasks := []domain.Task{
		dueTask("past", "u1", 8, -2),
		dueTask("future", "u1", 8, 30),
		dueTask("inside", "u1", 4, 1),
	}
	workload := ComputeWorkload(WorkloadInput{
		TeamTasks:  tasks,
		Members:    []domain.User{member("u1", 8)},
		PeriodDays: 3,
		Now:        testNow,
	})
	m := workload.Members[0]
	assert.InDelta(t, 4.0, m.HoursAllocated, 0.01)
	// Open assigned tasks still count toward the task total.
	assert.Equal(t, 3, m.TaskCount)
}

func TestComputeWorkload_TeamAverage(t *testing.T) {
	tasks := []domain.Task{
		dueTask("t1", "u1", 8, 0), // u1: 100% on day 1
	}
	workload := ComputeWorkload(WorkloadInput{
		TeamTasks:  tasks,
		Members:    []domain.User{member("u1", 8), member("u2", 8)},
		PeriodDays: 2,
		Now:        testNow,
	})
	// Four member-days: 100, 0, 0, 0.
	assert.InDelta(t, 25.0, workload.TeamAverage, 0.01)
	assert.Equal(t, 1, workload.OverloadedCount)
}

func TestComputeWorkload_DefaultCapacityFallback(t *testing.T) {
	tasks := []domain.Task{dueTask("t1", "u1", 4, 0)}
	workload := ComputeWorkload(WorkloadInput{
		TeamTasks:  tasks,
		Members:    []domain.User{member("u1", 0)},
		PeriodDays: 1,
		Now:        testNow,
	})
	// Unset capacity falls back to 8h: 4/8 = 50%.
	assert.InDelta(t, 50.0, workload.Members[0].Allocation, 0.01)
}
