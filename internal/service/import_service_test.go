package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/pulse/internal/importer"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshotJSON(t *testing.T, schema *importer.SnapshotSchema) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	data, err := json.MarshalIndent(schema, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func strp(s string) *string { return &s }

func validSnapshotSchema() *importer.SnapshotSchema {
	return &importer.SnapshotSchema{
		Users: []importer.UserImport{
			{ID: "u1", Name: "Ada", TeamID: "team-1"},
			{ID: "u2", Name: "Bob", TeamID: "team-1"},
		},
		Tasks: []importer.TaskImport{
			// t1 references t3, which appears later in the file.
			{ID: "t1", Title: "Blocked task", Status: "blocked", AssigneeID: strp("u1"), BlockedBy: []string{"t3"}},
			{ID: "t2", Title: "Open task", Status: "in_progress", AssigneeID: strp("u2")},
			{ID: "t3", Title: "Blocker task", AssigneeID: strp("u1")},
		},
	}
}

func TestImportSnapshot_FullSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	path := writeSnapshotJSON(t, validSnapshotSchema())
	result, err := svc.ImportSnapshot(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.UserCount)
	assert.Equal(t, 3, result.TaskCount)
	assert.Equal(t, 1, result.EdgeCount)

	tasks := repository.NewSQLiteTaskRepo(database)
	got, err := tasks.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3"}, got.BlockingTaskIDs)

	users := repository.NewSQLiteUserRepo(database)
	members, err := users.ListByTeam(ctx, "team-1")
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestImportSnapshot_ValidationFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	schema := validSnapshotSchema()
	schema.Tasks = append(schema.Tasks, importer.TaskImport{ID: "t1", Title: "Duplicate"})

	_, err := svc.ImportFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed")

	tasks := repository.NewSQLiteTaskRepo(database)
	all, err := tasks.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportSnapshot_RollbackOnTaskCreateFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	// ExecContext calls inside the tx: #1 and #2 create the users, #3
	// inserts the first task. Fail there so earlier writes must roll back.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected task create failure"),
	}
	svc := NewImportService(failUoW)

	_, err := svc.ImportFromSchema(ctx, validSnapshotSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected task create failure")

	users := repository.NewSQLiteUserRepo(database)
	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportSnapshot_FileNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	_, err := svc.ImportSnapshot(context.Background(), "/does/not/exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
