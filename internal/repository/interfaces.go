package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]domain.Task, error)
	ListByTeam(ctx context.Context, teamID string) ([]domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListByTeam(ctx context.Context, teamID string) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

type ScoreSnapshotRepo interface {
	// Record upserts the snapshot for its user and calendar date.
	Record(ctx context.Context, s *domain.ScoreSnapshot) error
	// ListRecent returns snapshots for the trailing days up to and
	// including asOf, ascending by date. The anchor is caller-supplied so
	// replayed queries see the history as it stood at that time.
	ListRecent(ctx context.Context, userID string, asOf time.Time, days int) ([]domain.ScoreSnapshot, error)
	Latest(ctx context.Context, userID string) (*domain.ScoreSnapshot, error)
}
