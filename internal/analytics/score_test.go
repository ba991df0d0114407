package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func doneTask(id string, due *time.Time, completed time.Time) domain.Task {
	return domain.Task{
		ID:          id,
		Status:      domain.TaskDone,
		DueDate:     due,
		CompletedAt: &completed,
		CreatedAt:   testNow.AddDate(0, 0, -10),
		UpdatedAt:   completed,
	}
}

func openTask(id string, status domain.TaskStatus, due *time.Time) domain.Task {
	return domain.Task{
		ID:        id,
		Status:    status,
		DueDate:   due,
		CreatedAt: testNow.AddDate(0, 0, -10),
		UpdatedAt: testNow.AddDate(0, 0, -1),
	}
}

func TestComputeExecutionScore_EmptyTaskSet(t *testing.T) {
	score := ComputeExecutionScore(ScoreInput{Now: testNow})
	assert.Equal(t, 0.0, score.Current)
	assert.Equal(t, domain.TrendStable, score.Trend)
	assert.Equal(t, 0.0, score.VsLastWeek)
}

func TestComputeExecutionScore_BreakdownRates(t *testing.T) {
	// 10 tasks: 5 completed on time, 2 completed late, 3 open without due
	// dates. 7 of 10 done; on-time counts 5 of the 7 that carried a due
	// date; the undated open tasks add no overdue penalty.
	due := testNow.AddDate(0, 0, -2)
	early := testNow.AddDate(0, 0, -3)
	late := testNow.AddDate(0, 0, -1)

	var tasks []domain.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, doneTask("on-time", &due, early))
	}
	for i := 0; i < 2; i++ {
		tasks = append(tasks, doneTask("late", &due, late))
	}
	for i := 0; i < 3; i++ {
		tasks = append(tasks, openTask("open", domain.TaskTodo, nil))
	}

	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, Now: testNow})
	assert.InDelta(t, 70.0, score.Breakdown.CompletionRate, 0.01)
	assert.InDelta(t, 71.43, score.Breakdown.OnTimeRate, 0.01)
	assert.GreaterOrEqual(t, score.Current, 0.0)
	assert.LessOrEqual(t, score.Current, 100.0)
}

func TestComputeExecutionScore_OverduePenaltyReducesScore(t *testing.T) {
	due := testNow.AddDate(0, 0, -2)
	completed := testNow.AddDate(0, 0, -3)

	tasks := []domain.Task{
		doneTask("d1", &due, completed),
		doneTask("d2", &due, completed),
	}
	baseline := ComputeExecutionScore(ScoreInput{Tasks: tasks, Now: testNow})

	overdue := testNow.AddDate(0, 0, -1)
	withOverdue := append(append([]domain.Task(nil), tasks...),
		openTask("late-open", domain.TaskInProgress, &overdue))
	penalized := ComputeExecutionScore(ScoreInput{Tasks: withOverdue, Now: testNow})

	assert.Less(t, penalized.Current, baseline.Current)
}

func TestComputeExecutionScore_NoDueDatesNotPenalized(t *testing.T) {
	completed := testNow.AddDate(0, 0, -1)
	tasks := []domain.Task{
		doneTask("d1", nil, completed),
		doneTask("d2", nil, completed),
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, Now: testNow})
	// All done, nothing overdue: the undated work should score like fully
	// on-time work, not like a 0% on-time record.
	assert.Greater(t, score.Current, 50.0)
}

func TestComputeExecutionScore_TrendAgainstHistory(t *testing.T) {
	completed := testNow.AddDate(0, 0, -1)
	tasks := []domain.Task{doneTask("d1", nil, completed)}

	history := []domain.ScoreSnapshot{
		{UserID: "u1", Date: testNow.AddDate(0, 0, -1), Current: 10},
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, History: history, Now: testNow})
	assert.Equal(t, domain.TrendUp, score.Trend)

	history[0].Current = 99.9
	score = ComputeExecutionScore(ScoreInput{Tasks: tasks, History: history, Now: testNow})
	assert.Equal(t, domain.TrendDown, score.Trend)
}

func TestComputeExecutionScore_VsLastWeek(t *testing.T) {
	completed := testNow.AddDate(0, 0, -1)
	tasks := []domain.Task{doneTask("d1", nil, completed)}

	history := []domain.ScoreSnapshot{
		{UserID: "u1", Date: testNow.AddDate(0, 0, -7), Current: 50},
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, History: history, Now: testNow})
	expected := (score.Current - 50) / 50 * 100
	assert.InDelta(t, expected, score.VsLastWeek, 0.01)
}

func TestComputeExecutionScore_VsLastWeek_NoSnapshot(t *testing.T) {
	completed := testNow.AddDate(0, 0, -1)
	tasks := []domain.Task{doneTask("d1", nil, completed)}
	history := []domain.ScoreSnapshot{
		{UserID: "u1", Date: testNow.AddDate(0, 0, -3), Current: 50},
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, History: history, Now: testNow})
	assert.Equal(t, 0.0, score.VsLastWeek)
}

func TestComputeStreak_ConsecutiveFocusDays(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 3; i++ {
		day := testNow.AddDate(0, 0, -i)
		done := day
		tasks = append(tasks, domain.Task{
			ID:          "f" + string(rune('0'+i)),
			Status:      domain.TaskDone,
			FocusDate:   datePtr(day),
			CompletedAt: &done,
		})
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, Now: testNow})
	assert.Equal(t, 3, score.Streak.Current)
}

func TestComputeStreak_GapDaysSkipped(t *testing.T) {
	// Focus work on today and two days ago; yesterday had no focus tasks
	// and must not break the run.
	days := []int{0, -2}
	var tasks []domain.Task
	for _, offset := range days {
		day := testNow.AddDate(0, 0, offset)
		tasks = append(tasks, domain.Task{
			ID:          "f",
			Status:      domain.TaskDone,
			FocusDate:   datePtr(day),
			CompletedAt: &day,
		})
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, Now: testNow})
	assert.Equal(t, 2, score.Streak.Current)
}

func TestComputeStreak_IncompleteFocusDayResets(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	twoAgo := testNow.AddDate(0, 0, -2)
	tasks := []domain.Task{
		{ID: "f1", Status: domain.TaskInProgress, FocusDate: datePtr(yesterday)},
		{ID: "f2", Status: domain.TaskDone, FocusDate: datePtr(twoAgo), CompletedAt: &twoAgo},
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, Now: testNow})
	assert.Equal(t, 0, score.Streak.Current)
}

func TestComputeStreak_BestFromHistory(t *testing.T) {
	today := testNow
	tasks := []domain.Task{
		{ID: "f1", Status: domain.TaskDone, FocusDate: datePtr(today), CompletedAt: &today},
	}
	history := []domain.ScoreSnapshot{
		{UserID: "u1", Date: testNow.AddDate(0, 0, -30), StreakBest: 12},
	}
	score := ComputeExecutionScore(ScoreInput{Tasks: tasks, History: history, Now: testNow})
	assert.Equal(t, 1, score.Streak.Current)
	assert.Equal(t, 12, score.Streak.Best)
}

func TestComputeExecutionScore_CompletionInvariantHolds(t *testing.T) {
	// A task whose CompletedAt was lost still counts as done after
	// normalization at the boundary.
	task := domain.Task{ID: "t1", Status: domain.TaskDone, UpdatedAt: testNow.AddDate(0, 0, -1)}
	task.Normalize(testNow)
	require.NotNil(t, task.CompletedAt)
	score := ComputeExecutionScore(ScoreInput{Tasks: []domain.Task{task}, Now: testNow})
	assert.InDelta(t, 100.0, score.Breakdown.CompletionRate, 0.01)
}
