package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/importer"
	"github.com/alexanderramin/pulse/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

// ImportFromSchema persists the snapshot atomically; a failure on any row
// rolls back the whole import.
func (s *importService) ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error) {
	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema, time.Now().UTC())

	edgeCount := 0
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		for _, u := range generated.Users {
			if err := txUsers.Create(ctx, u); err != nil {
				return fmt.Errorf("creating user %q: %w", u.Name, err)
			}
		}
		// Blocker edges may reference tasks that appear later in the
		// snapshot, so rows go in first and edges in a second pass.
		for _, t := range generated.Tasks {
			edges := t.BlockingTaskIDs
			t.BlockingTaskIDs = nil
			if err := txTasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
			t.BlockingTaskIDs = edges
		}
		for _, t := range generated.Tasks {
			if len(t.BlockingTaskIDs) == 0 {
				continue
			}
			if err := txTasks.Update(ctx, t); err != nil {
				return fmt.Errorf("linking blockers for task %q: %w", t.Title, err)
			}
			edgeCount += len(t.BlockingTaskIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		UserCount: len(generated.Users),
		TaskCount: len(generated.Tasks),
		EdgeCount: edgeCount,
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
