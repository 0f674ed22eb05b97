package match

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"phototime/internal/logging"
	"phototime/internal/sidecar"
)

// Writer applies capture times to media files inside a single base directory.
type Writer struct {
	dir    string
	logger *slog.Logger

	// setTimes is swappable so tests can inject write failures.
	setTimes func(path string, ts time.Time) error
}

// NewWriter constructs a Writer for the given directory.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Writer{dir: dir, logger: logger, setTimes: setFileTimes}
}

// Apply locates the media file the record names and sets its creation and
// modification times to the capture time, truncated to whole seconds. File
// contents, permissions, and all other metadata are left untouched. Re-running
// Apply over an already-processed file re-derives the same timestamps, so the
// operation is idempotent.
func (w *Writer) Apply(record sidecar.Metadata) FileResult {
	path := filepath.Join(w.dir, record.Title)
	result := FileResult{Title: record.Title, Path: path}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Info("media file missing, skipping",
				logging.String("title", record.Title),
				logging.String("path", path),
			)
			result.Outcome = OutcomeSkipped
			return result
		}
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("stat %s: %w", path, err)
		w.logger.Error("media file unreadable", logging.Error(result.Err))
		return result
	}

	ts := record.CaptureTime()
	if err := w.setTimes(path, ts); err != nil {
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("set file times on %s: %w", path, err)
		w.logger.Error("timestamp write failed",
			logging.Error(result.Err),
			logging.String("title", record.Title),
		)
		return result
	}

	w.logger.Debug("timestamps applied",
		logging.String("title", record.Title),
		logging.Time("capture_time", ts),
	)
	result.Outcome = OutcomeWritten
	return result
}
