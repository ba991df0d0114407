package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pulse/internal/analytics"
	"github.com/alexanderramin/pulse/internal/cli"
	"github.com/alexanderramin/pulse/internal/config"
	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	snapshotRepo := repository.NewSQLiteScoreSnapshotRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	opts := service.AnalyticsOptions{
		StalenessDays:     cfg.StalenessDays,
		DecisionDelayDays: cfg.DecisionDelayDays,
		ScoreWeights: analytics.ScoreWeights{
			Completion:           cfg.ScoreWeights.Completion,
			OnTime:               cfg.ScoreWeights.OnTime,
			Velocity:             cfg.ScoreWeights.Velocity,
			Quality:              cfg.ScoreWeights.Quality,
			OverduePenaltyPoints: cfg.ScoreWeights.OverduePenaltyPoints,
		},
	}

	var observers []service.UseCaseObserver
	if os.Getenv("PULSE_LOG_USECASES") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Tasks:     service.NewTaskService(taskRepo),
		Users:     service.NewUserService(userRepo),
		Analytics: service.NewAnalyticsService(taskRepo, userRepo, snapshotRepo, opts, observers...),
		Import:    service.NewImportService(uow),

		ListenAddr: cfg.ListenAddr,
	}

	// Detect interactive terminal for forms and the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
