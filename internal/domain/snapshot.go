package domain

import "time"

// ScoreSnapshot is one persisted daily execution score for a user.
// Snapshots are the history consumed by trend and streak calculations.
type ScoreSnapshot struct {
	UserID        string
	Date          time.Time // date precision, UTC
	Current       float64
	StreakCurrent int
	StreakBest    int

	CreatedAt time.Time
}
