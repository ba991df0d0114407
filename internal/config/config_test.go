package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "pulse.db"), cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8467", cfg.ListenAddr)
	assert.Equal(t, 7, cfg.StalenessDays)
	assert.InDelta(t, 0.40, cfg.ScoreWeights.Completion, 0.001)
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
db:
  path: /tmp/custom.db
api:
  listen: ":9000"
detectors:
  staleness_days: 14
score:
  overdue_penalty_points: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 14, cfg.StalenessDays)
	assert.Equal(t, 7, cfg.DecisionDelayDays)
	assert.InDelta(t, 3.0, cfg.ScoreWeights.OverduePenaltyPoints, 0.001)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "detectors:\n  staleness_days: 14\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	t.Setenv("PULSE_DETECTORS_STALENESS_DAYS", "21")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.StalenessDays)
}

func TestLoad_RejectsBadThresholds(t *testing.T) {
	dir := t.TempDir()
	yaml := "detectors:\n  staleness_days: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staleness_days")
}

func TestDefaultDir_HonorsPulseHome(t *testing.T) {
	t.Setenv("PULSE_HOME", "/srv/pulse")

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/pulse", dir)
}
