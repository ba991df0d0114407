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

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, title, type, status, priority, assignee_id, initiative_id,
		due_date, focus_date, estimated_hours, created_at, updated_at, completed_at`

// SQLiteTaskRepo implements TaskRepo over a SQLite database. It accepts a
// db.DBTX so the same implementation works inside and outside transactions.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		string(t.Type),
		string(t.Status),
		string(t.Priority),
		nullableStrToValue(t.AssigneeID),
		nullableStrToValue(t.InitiativeID),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.FocusDate, dateLayout),
		t.EstimatedHours,
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return r.replaceBlockers(ctx, t.ID, t.BlockingTaskIDs)
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	task, err := r.scanTask(row)
	if err != nil {
		return nil, err
	}
	blockers, err := r.loadBlockers(ctx, []string{task.ID})
	if err != nil {
		return nil, err
	}
	task.BlockingTaskIDs = blockers[task.ID]
	return task, nil
}

func (r *SQLiteTaskRepo) ListByAssignee(ctx context.Context, assigneeID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assignee_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by assignee: %w", err)
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *SQLiteTaskRepo) ListByTeam(ctx context.Context, teamID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumnsAliased + `
		FROM tasks t
		JOIN users u ON t.assignee_id = u.id
		WHERE u.team_id = ?
		ORDER BY t.created_at`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by team: %w", err)
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, type = ?, status = ?, priority = ?,
		assignee_id = ?, initiative_id = ?, due_date = ?, focus_date = ?,
		estimated_hours = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Type),
		string(t.Status),
		string(t.Priority),
		nullableStrToValue(t.AssigneeID),
		nullableStrToValue(t.InitiativeID),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.FocusDate, dateLayout),
		t.EstimatedHours,
		t.UpdatedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return r.replaceBlockers(ctx, t.ID, t.BlockingTaskIDs)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// taskColumnsAliased is the same column list prefixed with "t." for joins.
const taskColumnsAliased = `t.id, t.title, t.type, t.status, t.priority, t.assignee_id,
		t.initiative_id, t.due_date, t.focus_date, t.estimated_hours,
		t.created_at, t.updated_at, t.completed_at`

func (r *SQLiteTaskRepo) replaceBlockers(ctx context.Context, taskID string, blockerIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_blockers WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("clearing task blockers: %w", err)
	}
	for _, blocker := range blockerIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO task_blockers (task_id, blocker_id) VALUES (?, ?)`, taskID, blocker); err != nil {
			return fmt.Errorf("inserting task blocker %q: %w", blocker, err)
		}
	}
	return nil
}

// loadBlockers fetches blocker edges for the given task ids in one query.
func (r *SQLiteTaskRepo) loadBlockers(ctx context.Context, taskIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(taskIDs))
	if len(taskIDs) == 0 {
		return result, nil
	}

	query := `SELECT task_id, blocker_id FROM task_blockers WHERE task_id IN (`
	args := make([]any, len(taskIDs))
	for i, id := range taskIDs {
		if i > 0 {
			query += ", "
		}
		query += "?"
		args[i] = id
	}
	query += `) ORDER BY task_id, blocker_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading task blockers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, blockerID string
		if err := rows.Scan(&taskID, &blockerID); err != nil {
			return nil, fmt.Errorf("scanning task blocker: %w", err)
		}
		result[taskID] = append(result[taskID], blockerID)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTaskRepo) scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var taskType, status, priority string
	var assignee, initiative, dueDate, focusDate, completedAt sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.Title, &taskType, &status, &priority,
		&assignee, &initiative, &dueDate, &focusDate,
		&t.EstimatedHours, &createdAt, &updatedAt, &completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Type = domain.TaskType(taskType)
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.TaskPriority(priority)
	t.AssigneeID = strToNullablePtr(assignee)
	t.InitiativeID = strToNullablePtr(initiative)
	t.DueDate = parseNullableTime(dueDate, dateLayout)
	t.FocusDate = parseNullableTime(focusDate, dateLayout)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	t.CreatedAt = parseTime(createdAt, time.RFC3339)
	t.UpdatedAt = parseTime(updatedAt, time.RFC3339)
	return &t, nil
}

func (r *SQLiteTaskRepo) collect(ctx context.Context, rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	var ids []string
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	blockers, err := r.loadBlockers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].BlockingTaskIDs = blockers[tasks[i].ID]
	}
	return tasks, nil
}
