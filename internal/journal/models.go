package journal

import "time"

// RunStatus represents the lifecycle of a journaled run.
type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
	StatusCanceled  RunStatus = "canceled"
)

// Counts aggregates per-file outcomes for one run.
type Counts struct {
	Records int
	Written int
	Skipped int
	Failed  int
}

// Run is one journaled batch run.
type Run struct {
	ID         string
	Directory  string
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt time.Time
	Counts     Counts
	Error      string
}

// FileRecord is the journaled outcome of a single record within a run.
type FileRecord struct {
	RunID    string
	Position int
	Title    string
	Outcome  string
	Detail   string
}
