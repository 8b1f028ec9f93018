package model

import "time"

// RunStatus represents the current state of a pipeline run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// RowOutcome is the terminal state of one input row within a run.
type RowOutcome string

const (
	// RowSkipped means the row was already marked processed.
	RowSkipped RowOutcome = "skipped"
	// RowSkippedNoData means the row lacked a company name or URL and was
	// left unmarked so it can be fixed and retried.
	RowSkippedNoData RowOutcome = "skipped_no_data"
	// RowSaved means results were appended (possibly zero rows) and the
	// Processed cell was updated.
	RowSaved RowOutcome = "saved"
	// RowSavedMarkFailed means results were appended but the Processed cell
	// update failed; the row will be reprocessed on the next run.
	RowSavedMarkFailed RowOutcome = "saved_mark_failed"
)

// Run records a single pipeline execution.
type Run struct {
	ID        string      `json:"id"`
	Status    RunStatus   `json:"status"`
	Summary   *RunSummary `json:"summary,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RunSummary is the final accounting for a run.
type RunSummary struct {
	RunID         string        `json:"run_id"`
	Companies     int           `json:"companies"`
	Saved         int           `json:"saved"`
	Skipped       int           `json:"skipped"`
	SkippedNoData int           `json:"skipped_no_data"`
	MarkFailures  int           `json:"mark_failures"`
	RowsAppended  int           `json:"rows_appended"`
	Duration      time.Duration `json:"duration_ns"`
	Error         string        `json:"error,omitempty"`
}

// Record tallies one row outcome into the summary.
func (s *RunSummary) Record(outcome RowOutcome) {
	s.Companies++
	switch outcome {
	case RowSkipped:
		s.Skipped++
	case RowSkippedNoData:
		s.SkippedNoData++
	case RowSaved:
		s.Saved++
	case RowSavedMarkFailed:
		s.Saved++
		s.MarkFailures++
	}
}
