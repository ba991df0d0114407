// Package config loads the pulse configuration from ~/.pulse/config.yaml,
// with PULSE_* environment variables taking precedence over the file and
// built-in defaults filling the rest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything tunable about the binary.
type Config struct {
	DBPath     string
	ListenAddr string

	// Detector thresholds, in days.
	StalenessDays     int
	DecisionDelayDays int

	// Score blend weights. The four rate weights should sum to 1.
	ScoreWeights ScoreWeightsConfig
}

type ScoreWeightsConfig struct {
	Completion           float64
	OnTime               float64
	Velocity             float64
	Quality              float64
	OverduePenaltyPoints float64
}

// Default returns the configuration used when no file or environment
// overrides exist. Dir is where the config file and database live.
func Default(dir string) *Config {
	return &Config{
		DBPath:            filepath.Join(dir, "pulse.db"),
		ListenAddr:        "127.0.0.1:8467",
		StalenessDays:     7,
		DecisionDelayDays: 7,
		ScoreWeights: ScoreWeightsConfig{
			Completion:           0.40,
			OnTime:               0.25,
			Velocity:             0.20,
			Quality:              0.15,
			OverduePenaltyPoints: 5,
		},
	}
}

// DefaultDir resolves the pulse home directory: PULSE_HOME if set,
// otherwise ~/.pulse.
func DefaultDir() (string, error) {
	if dir := os.Getenv("PULSE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".pulse"), nil
}

// Load reads config.yaml from dir. A missing file is not an error; the
// defaults and environment apply.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.path", cfg.DBPath)
	v.SetDefault("api.listen", cfg.ListenAddr)
	v.SetDefault("detectors.staleness_days", cfg.StalenessDays)
	v.SetDefault("detectors.decision_delay_days", cfg.DecisionDelayDays)
	v.SetDefault("score.completion_weight", cfg.ScoreWeights.Completion)
	v.SetDefault("score.on_time_weight", cfg.ScoreWeights.OnTime)
	v.SetDefault("score.velocity_weight", cfg.ScoreWeights.Velocity)
	v.SetDefault("score.quality_weight", cfg.ScoreWeights.Quality)
	v.SetDefault("score.overdue_penalty_points", cfg.ScoreWeights.OverduePenaltyPoints)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	cfg.DBPath = v.GetString("db.path")
	cfg.ListenAddr = v.GetString("api.listen")
	cfg.StalenessDays = v.GetInt("detectors.staleness_days")
	cfg.DecisionDelayDays = v.GetInt("detectors.decision_delay_days")
	cfg.ScoreWeights.Completion = v.GetFloat64("score.completion_weight")
	cfg.ScoreWeights.OnTime = v.GetFloat64("score.on_time_weight")
	cfg.ScoreWeights.Velocity = v.GetFloat64("score.velocity_weight")
	cfg.ScoreWeights.Quality = v.GetFloat64("score.quality_weight")
	cfg.ScoreWeights.OverduePenaltyPoints = v.GetFloat64("score.overdue_penalty_points")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.StalenessDays <= 0 {
		return fmt.Errorf("detectors.staleness_days must be positive, got %d", cfg.StalenessDays)
	}
	if cfg.DecisionDelayDays <= 0 {
		return fmt.Errorf("detectors.decision_delay_days must be positive, got %d", cfg.DecisionDelayDays)
	}
	sum := cfg.ScoreWeights.Completion + cfg.ScoreWeights.OnTime +
		cfg.ScoreWeights.Velocity + cfg.ScoreWeights.Quality
	if sum <= 0 {
		return fmt.Errorf("score weights must sum to a positive value")
	}
	if cfg.ScoreWeights.OverduePenaltyPoints < 0 {
		return fmt.Errorf("score.overdue_penalty_points must not be negative")
	}
	return nil
}
