package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/domain"
)

const snapshotColumns = `user_id, date, current, streak_current, streak_best, created_at`

// SQLiteScoreSnapshotRepo implements ScoreSnapshotRepo over SQLite.
type SQLiteScoreSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteScoreSnapshotRepo creates a new SQLiteScoreSnapshotRepo.
func NewSQLiteScoreSnapshotRepo(dbtx db.DBTX) *SQLiteScoreSnapshotRepo {
	return &SQLiteScoreSnapshotRepo{db: dbtx}
}

func (r *SQLiteScoreSnapshotRepo) Record(ctx context.Context, s *domain.ScoreSnapshot) error {
	query := `INSERT INTO score_snapshots (` + snapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			current = excluded.current,
			streak_current = excluded.streak_current,
			streak_best = excluded.streak_best`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID,
		domain.DateOf(s.Date).Format(dateLayout),
		s.Current,
		s.StreakCurrent,
		s.StreakBest,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording score snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteScoreSnapshotRepo) ListRecent(ctx context.Context, userID string, asOf time.Time, days int) ([]domain.ScoreSnapshot, error) {
	anchor := asOf.UTC()
	cutoff := anchor.AddDate(0, 0, -days).Format(dateLayout)
	upper := domain.DateOf(anchor).Format(dateLayout)
	query := `SELECT ` + snapshotColumns + ` FROM score_snapshots
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, query, userID, cutoff, upper)
	if err != nil {
		return nil, fmt.Errorf("listing score snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.ScoreSnapshot
	for rows.Next() {
		s, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating score snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *SQLiteScoreSnapshotRepo) Latest(ctx context.Context, userID string) (*domain.ScoreSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM score_snapshots
		WHERE user_id = ?
		ORDER BY date DESC
		LIMIT 1`
	return r.scanSnapshot(r.db.QueryRowContext(ctx, query, userID))
}

func (r *SQLiteScoreSnapshotRepo) scanSnapshot(row rowScanner) (*domain.ScoreSnapshot, error) {
	var s domain.ScoreSnapshot
	var date, createdAt string
	err := row.Scan(&s.UserID, &date, &s.Current, &s.StreakCurrent, &s.StreakBest, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning score snapshot: %w", err)
	}
	s.Date = parseTime(date, dateLayout)
	s.CreatedAt = parseTime(createdAt, time.RFC3339)
	return &s, nil
}
