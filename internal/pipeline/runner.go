package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gofrs/flock"

	"phototime/internal/config"
	"phototime/internal/journal"
	"phototime/internal/logging"
	"phototime/internal/match"
	"phototime/internal/sidecar"
)

var (
	// ErrUnimplemented is returned synchronously, before any filesystem
	// work, when a run requests subdirectory traversal.
	ErrUnimplemented = errors.New("searching subdirectories is not implemented")
	// ErrBusy is returned when another run already holds the run lock.
	ErrBusy = errors.New("another run is already in progress")
)

// Options configure a single batch run.
type Options struct {
	// Directory holds the media and sidecar files.
	Directory string
	// Recursive requests subdirectory traversal. Unsupported; Start rejects
	// it with ErrUnimplemented rather than silently scanning one level.
	Recursive bool
	// CopyMatched is reserved. It is accepted so shells can expose the
	// toggle, logged as inert, and has no effect.
	CopyMatched bool
}

// Result summarizes a finished run.
type Result struct {
	RunID  string
	Counts journal.Counts
	Files  []match.FileResult
}

// Runner executes batch runs one at a time.
type Runner struct {
	cfg     *config.Config
	journal *journal.Journal
	logger  *slog.Logger
	lock    *flock.Flock
	running atomic.Bool
}

// NewRunner constructs a Runner backed by the given journal.
func NewRunner(cfg *config.Config, jrnl *journal.Journal, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		journal: jrnl,
		logger:  logger,
		lock:    flock.New(cfg.LockPath()),
	}
}

// Handle tracks an in-flight run. Progress delivers fractions in [0,1], one
// per processed record plus a terminal 1.0 on normal completion, and is closed
// when the run ends. Wait blocks until the run ends and returns the terminal
// result or error.
type Handle struct {
	Progress <-chan float64

	done   chan struct{}
	result Result
	err    error
}

// Wait blocks until the run has ended.
func (h *Handle) Wait() (Result, error) {
	<-h.done
	return h.result, h.err
}

// Start validates the options, acquires the run lock, and launches the batch
// on a background goroutine. Unsupported options and a held lock are reported
// synchronously; everything after that arrives through the returned Handle.
func (r *Runner) Start(ctx context.Context, opts Options) (*Handle, error) {
	if opts.Recursive {
		return nil, ErrUnimplemented
	}
	if opts.CopyMatched {
		r.logger.Warn("copy_matched_files is reserved and has no effect",
			logging.String("directory", opts.Directory),
		)
	}

	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	locked, err := r.lock.TryLock()
	if err != nil {
		r.running.Store(false)
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		r.running.Store(false)
		return nil, ErrBusy
	}

	queue := newProgressQueue()
	handle := &Handle{
		Progress: queue.out,
		done:     make(chan struct{}),
	}

	go r.run(ctx, opts, queue, handle)

	return handle, nil
}

func (r *Runner) run(ctx context.Context, opts Options, queue *progressQueue, handle *Handle) {
	defer func() {
		queue.close()
		if err := r.lock.Unlock(); err != nil {
			r.logger.Warn("failed to release run lock", logging.Error(err))
		}
		r.running.Store(false)
		close(handle.done)
	}()

	// Journal writes use a detached context so a canceled run still leaves
	// an accurate record of what was applied before the cancellation.
	jctx := context.WithoutCancel(ctx)

	runID, err := r.journal.BeginRun(jctx, opts.Directory)
	if err != nil {
		handle.err = err
		return
	}
	handle.result.RunID = runID

	counts, files, runErr := r.process(ctx, jctx, opts, runID, queue)
	handle.result.Counts = counts
	handle.result.Files = files
	handle.err = runErr

	status := journal.StatusCompleted
	switch {
	case errors.Is(runErr, context.Canceled):
		status = journal.StatusCanceled
	case runErr != nil:
		status = journal.StatusFailed
	}
	if err := r.journal.FinishRun(jctx, runID, status, counts, runErr); err != nil {
		r.logger.Warn("failed to journal run completion",
			logging.Error(err),
			logging.String("run_id", runID),
		)
	}
}

func (r *Runner) process(ctx, jctx context.Context, opts Options, runID string, queue *progressQueue) (journal.Counts, []match.FileResult, error) {
	var counts journal.Counts

	if err := ctx.Err(); err != nil {
		return counts, nil, err
	}

	paths, err := sidecar.Discover(opts.Directory, r.cfg.Sidecar.Extension)
	if err != nil {
		return counts, nil, err
	}
	r.logger.Info("sidecars discovered",
		logging.Int("count", len(paths)),
		logging.String("directory", opts.Directory),
	)

	records, err := sidecar.ExtractAll(paths)
	if err != nil {
		return counts, nil, err
	}
	counts.Records = len(records)

	writer := match.NewWriter(opts.Directory, r.logger)
	files := make([]match.FileResult, 0, len(records))
	total := len(records)

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return counts, files, err
		}

		result := writer.Apply(record)
		files = append(files, result)
		switch result.Outcome {
		case match.OutcomeWritten:
			counts.Written++
		case match.OutcomeSkipped:
			counts.Skipped++
		case match.OutcomeFailed:
			counts.Failed++
		}

		if err := r.journal.RecordFile(jctx, runID, i, result); err != nil {
			r.logger.Warn("failed to journal file outcome",
				logging.Error(err),
				logging.String("title", result.Title),
			)
		}

		queue.push(float64(i+1) / float64(total))
	}

	queue.push(1.0)

	r.logger.Info("batch complete",
		logging.Int("records", counts.Records),
		logging.Int("written", counts.Written),
		logging.Int("skipped", counts.Skipped),
		logging.Int("failed", counts.Failed),
	)
	return counts, files, nil
}
