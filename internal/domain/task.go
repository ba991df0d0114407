package domain

import "time"

type Task struct {
	ID           string
	Title        string
	Type         TaskType
	Status       TaskStatus
	Priority     TaskPriority
	AssigneeID   *string
	InitiativeID *string

	// Scheduling
	DueDate   *time.Time // date precision
	FocusDate *time.Time // date precision; explicitly scheduled same-day work

	// Effort
	EstimatedHours float64

	// Dependencies: ids of tasks this task waits on (predecessors).
	BlockingTaskIDs []string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// IsOpen reports whether the task still requires work.
func (t *Task) IsOpen() bool {
	return t.Status != TaskDone
}

// IsOverdue reports whether the task is open and past its due date.
// Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.IsOpen() && t.DueDate != nil && t.DueDate.Before(now)
}

// CompletedOnTime reports whether the task was completed at or before its
// due date. Only meaningful for done tasks that carried a due date.
func (t *Task) CompletedOnTime() bool {
	if t.Status != TaskDone || t.CompletedAt == nil || t.DueDate == nil {
		return false
	}
	// Due dates are date-precision: anything on the due day still counts.
	deadline := t.DueDate.AddDate(0, 0, 1)
	return t.CompletedAt.Before(deadline)
}

// MarkDone transitions the task to done and stamps CompletedAt.
// Already-done tasks keep their original completion time.
func (t *Task) MarkDone(now time.Time) {
	if t.Status == TaskDone && t.CompletedAt != nil {
		return
	}
	t.Status = TaskDone
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Normalize repairs the completion invariant: CompletedAt is non-nil iff
// the task is done. Status is trusted over the timestamp.
func (t *Task) Normalize(now time.Time) {
	switch {
	case t.Status == TaskDone && t.CompletedAt == nil:
		ts := now
		if !t.UpdatedAt.IsZero() {
			ts = t.UpdatedAt
		}
		t.CompletedAt = &ts
	case t.Status != TaskDone && t.CompletedAt != nil:
		t.CompletedAt = nil
	}
}
