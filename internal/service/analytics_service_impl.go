package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/analytics"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
	"golang.org/x/sync/errgroup"
)

// scoreHistoryDays bounds how far back snapshots are loaded for trend and
// streak computation.
const scoreHistoryDays = 90

// AnalyticsOptions tunes the detectors. Zero values fall back to the
// package defaults in internal/analytics.
type AnalyticsOptions struct {
	StalenessDays     int
	DecisionDelayDays int
	ScoreWeights      analytics.ScoreWeights
}

type analyticsService struct {
	tasks     repository.TaskRepo
	users     repository.UserRepo
	snapshots repository.ScoreSnapshotRepo
	opts      AnalyticsOptions
	observer  UseCaseObserver
}

func NewAnalyticsService(
	tasks repository.TaskRepo,
	users repository.UserRepo,
	snapshots repository.ScoreSnapshotRepo,
	opts AnalyticsOptions,
	observers ...UseCaseObserver,
) AnalyticsService {
	return &analyticsService{
		tasks:     tasks,
		users:     users,
		snapshots: snapshots,
		opts:      opts,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *analyticsService) ExecutionScore(ctx context.Context, req contract.ScoreRequest) (result *contract.ExecutionScore, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": req.UserID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "execution-score",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := resolveNow(req.Now)
	user, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.loadUserTasks(ctx, user.ID, now)
	if err != nil {
		return nil, err
	}

	history, err := s.snapshots.ListRecent(ctx, user.ID, now, scoreHistoryDays)
	if err != nil {
		return nil, fmt.Errorf("loading score history: %w", err)
	}

	teamTasks, teamSize, err := s.loadTeamContext(ctx, user, now)
	if err != nil {
		return nil, err
	}

	// Velocity and bottleneck passes are independent of each other.
	var (
		vel contract.VelocityMetrics
		btl []contract.Bottleneck
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		vel = analytics.ComputeVelocity(analytics.VelocityInput{
			Tasks:      tasks,
			TeamTasks:  teamTasks,
			TeamSize:   teamSize,
			WindowDays: req.WindowDays,
			Now:        now,
		})
		return nil
	})
	g.Go(func() error {
		btl = analytics.DetectBottlenecks(analytics.BottleneckInput{
			Tasks:             tasks,
			Now:               now,
			StalenessDays:     s.opts.StalenessDays,
			DecisionDelayDays: s.opts.DecisionDelayDays,
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	score := analytics.ComputeExecutionScore(analytics.ScoreInput{
		Tasks:       tasks,
		History:     history,
		VelocitySub: analytics.VelocitySubScore(vel),
		QualitySub:  analytics.QualitySubScore(btl),
		Now:         now,
		Weights:     s.opts.ScoreWeights,
	})
	fields["score"] = score.Current

	snapshot := &domain.ScoreSnapshot{
		UserID:        user.ID,
		Date:          domain.DateOf(now),
		Current:       score.Current,
		StreakCurrent: score.Streak.Current,
		StreakBest:    score.Streak.Best,
		CreatedAt:     now,
	}
	if err := s.snapshots.Record(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("recording score snapshot: %w", err)
	}

	return &score, nil
}

func (s *analyticsService) Velocity(ctx context.Context, req contract.VelocityRequest) (*contract.VelocityMetrics, error) {
	now := resolveNow(req.Now)
	user, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.loadUserTasks(ctx, user.ID, now)
	if err != nil {
		return nil, err
	}

	teamTasks, teamSize, err := s.loadTeamContext(ctx, user, now)
	if err != nil {
		return nil, err
	}

	metrics := analytics.ComputeVelocity(analytics.VelocityInput{
		Tasks:      tasks,
		TeamTasks:  teamTasks,
		TeamSize:   teamSize,
		WindowDays: req.WindowDays,
		Now:        now,
	})
	return &metrics, nil
}

func (s *analyticsService) Bottlenecks(ctx context.Context, req contract.BottleneckRequest) ([]contract.Bottleneck, error) {
	now := resolveNow(req.Now)
	user, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.loadUserTasks(ctx, user.ID, now)
	if err != nil {
		return nil, err
	}

	return analytics.DetectBottlenecks(analytics.BottleneckInput{
		Tasks:             tasks,
		Now:               now,
		StalenessDays:     s.opts.StalenessDays,
		DecisionDelayDays: s.opts.DecisionDelayDays,
	}), nil
}

func (s *analyticsService) Workload(ctx context.Context, req contract.WorkloadRequest) (*contract.TeamWorkload, error) {
	if req.TeamID == "" {
		return nil, contract.NewRequestError(contract.ErrCodeInvalidRequest, "team id is required")
	}
	now := resolveNow(req.Now)

	members, err := s.users.ListByTeam(ctx, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("loading team members: %w", err)
	}
	if len(members) == 0 {
		return nil, contract.NewRequestError(contract.ErrCodeUnknownTeam, fmt.Sprintf("team '%s' has no members", req.TeamID))
	}

	teamTasks, err := s.tasks.ListByTeam(ctx, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("loading team tasks: %w", err)
	}
	normalizeAll(teamTasks, now)

	workload := analytics.ComputeWorkload(analytics.WorkloadInput{
		TeamTasks:  teamTasks,
		Members:    members,
		PeriodDays: req.PeriodDays,
		Now:        now,
	})
	return &workload, nil
}

func (s *analyticsService) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, contract.NewRequestError(contract.ErrCodeInvalidRequest, "user id is required")
	}
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, contract.NewRequestError(contract.ErrCodeUnknownUser, fmt.Sprintf("user '%s' not found", userID))
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}

func (s *analyticsService) loadUserTasks(ctx context.Context, userID string, now time.Time) ([]domain.Task, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	normalizeAll(tasks, now)
	return tasks, nil
}

func (s *analyticsService) loadTeamContext(ctx context.Context, user *domain.User, now time.Time) ([]domain.Task, int, error) {
	if user.TeamID == "" {
		return nil, 1, nil
	}
	teamTasks, err := s.tasks.ListByTeam(ctx, user.TeamID)
	if err != nil {
		return nil, 0, fmt.Errorf("loading team tasks: %w", err)
	}
	members, err := s.users.ListByTeam(ctx, user.TeamID)
	if err != nil {
		return nil, 0, fmt.Errorf("loading team members: %w", err)
	}
	normalizeAll(teamTasks, now)
	return teamTasks, len(members), nil
}

func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return override.UTC()
	}
	return time.Now().UTC()
}

// normalizeAll repairs malformed rows before any computation touches them.
func normalizeAll(tasks []domain.Task, now time.Time) {
	for i := range tasks {
		tasks[i].Normalize(now)
	}
}
