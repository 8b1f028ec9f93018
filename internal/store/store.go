package store

import (
	"context"

	"github.com/sells-group/lead-hunter/internal/model"
)

// Store persists run history for the pipeline.
type Store interface {
	// CreateRun records the start of a run.
	CreateRun(ctx context.Context, runID string) error
	// CompleteRun records the terminal state of a run; a non-nil runErr
	// marks it failed.
	CompleteRun(ctx context.Context, runID string, summary *model.RunSummary, runErr error) error
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
