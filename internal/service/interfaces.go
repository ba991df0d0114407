package service

import (
	"context"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/importer"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListByTeam(ctx context.Context, teamID string) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}

// AnalyticsService answers the read-only productivity queries. All four
// calls are pure over a snapshot of stored tasks; ExecutionScore also
// records one score snapshot per user per day as a side effect.
type AnalyticsService interface {
	ExecutionScore(ctx context.Context, req contract.ScoreRequest) (*contract.ExecutionScore, error)
	Velocity(ctx context.Context, req contract.VelocityRequest) (*contract.VelocityMetrics, error)
	Bottlenecks(ctx context.Context, req contract.BottleneckRequest) ([]contract.Bottleneck, error)
	Workload(ctx context.Context, req contract.WorkloadRequest) (*contract.TeamWorkload, error)
}

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	UserCount int
	TaskCount int
	EdgeCount int
}

type ImportService interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error)
}
