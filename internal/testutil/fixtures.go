package testutil

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
		if s == domain.TaskDone && t.CompletedAt == nil {
			ts := t.UpdatedAt
			t.CompletedAt = &ts
		}
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithAssignee(userID string) TaskOption {
	return func(t *domain.Task) {
		t.AssigneeID = &userID
	}
}

func WithInitiative(id string) TaskOption {
	return func(t *domain.Task) {
		t.InitiativeID = &id
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithFocusDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.FocusDate = &d
	}
}

func WithEstimatedHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = h
	}
}

func WithBlockers(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.BlockingTaskIDs = ids
	}
}

func WithCompletedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CompletedAt = &ts
	}
}

func WithUpdatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.UpdatedAt = ts
	}
}

func WithCreatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = ts
	}
}

// NewTestTask builds a task with sensible defaults for tests.
func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.TypeTask,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// User options
type UserOption func(*domain.User)

func WithTeam(teamID string) UserOption {
	return func(u *domain.User) {
		u.TeamID = teamID
	}
}

func WithCapacity(hours float64) UserOption {
	return func(u *domain.User) {
		u.DailyCapacityHours = hours
	}
}

// NewTestUser builds a user with sensible defaults for tests.
func NewTestUser(name string, opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	u := &domain.User{
		ID:                 uuid.New().String(),
		Name:               name,
		TeamID:             "team-test",
		DailyCapacityHours: domain.DefaultDailyCapacityHours,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
