package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE re-runs that hit an existing column are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		team_id              TEXT NOT NULL,
		daily_capacity_hours REAL NOT NULL DEFAULT 8,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_users_team ON users(team_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		type            TEXT NOT NULL DEFAULT 'task'
		                CHECK(type IN ('task','decision','review','research')),
		status          TEXT NOT NULL DEFAULT 'todo'
		                CHECK(status IN ('todo','in_progress','blocked','done')),
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('low','medium','high','urgent')),
		assignee_id     TEXT REFERENCES users(id) ON DELETE SET NULL,
		initiative_id   TEXT,
		due_date        TEXT,
		focus_date      TEXT,
		estimated_hours REAL NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		completed_at    TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS task_blockers (
		task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		blocker_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		PRIMARY KEY (task_id, blocker_id)
	)`,

	`CREATE TABLE IF NOT EXISTS score_snapshots (
		user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date           TEXT NOT NULL,
		current        REAL NOT NULL,
		streak_current INTEGER NOT NULL DEFAULT 0,
		streak_best    INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		PRIMARY KEY (user_id, date)
	)`,
}
