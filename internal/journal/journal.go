package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"phototime/internal/config"
	"phototime/internal/match"
)

// Journal manages run persistence backed by SQLite.
type Journal struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database and applies the schema.
func Open(cfg *config.Config) (*Journal, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Paths.JournalPath
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	journal := &Journal{db: db, path: dbPath}
	if err := journal.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return journal, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Path returns the on-disk location backing the journal.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// BeginRun inserts a new run in the running state and returns its id.
func (j *Journal) BeginRun(ctx context.Context, directory string) (string, error) {
	id := uuid.NewString()
	startedAt := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := j.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, directory, status, started_at) VALUES (?, ?, ?, ?)`,
		id, directory, StatusRunning, startedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecordFile journals the outcome of one record within a run. Position is the
// zero-based index in the extractor's output sequence.
func (j *Journal) RecordFile(ctx context.Context, runID string, position int, result match.FileResult) error {
	_, err := j.db.ExecContext(
		ctx,
		`INSERT INTO run_files (run_id, position, title, outcome, detail) VALUES (?, ?, ?, ?, ?)`,
		runID, position, result.Title, string(result.Outcome), nullableString(result.Detail()),
	)
	if err != nil {
		return fmt.Errorf("insert run file: %w", err)
	}
	return nil
}

// FinishRun records the terminal status, counts, and error (if any) of a run.
func (j *Journal) FinishRun(ctx context.Context, runID string, status RunStatus, counts Counts, runErr error) error {
	finishedAt := time.Now().UTC().Format(time.RFC3339Nano)
	message := ""
	if runErr != nil {
		message = runErr.Error()
	}

	res, err := j.db.ExecContext(
		ctx,
		`UPDATE runs
            SET status = ?, finished_at = ?, records = ?, written = ?, skipped = ?, failed = ?, error = ?
          WHERE id = ?`,
		status, finishedAt, counts.Records, counts.Written, counts.Skipped, counts.Failed,
		nullableString(message), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: no run with id %s", runID)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. A limit <= 0 returns
// every run.
func (j *Journal) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, directory, status, started_at, finished_at, records, written, skipped, failed, error
                FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// FilesForRun returns the journaled file outcomes of a run in processing order.
func (j *Journal) FilesForRun(ctx context.Context, runID string) ([]FileRecord, error) {
	rows, err := j.db.QueryContext(
		ctx,
		`SELECT run_id, position, title, outcome, detail FROM run_files WHERE run_id = ? ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list run files: %w", err)
	}
	defer rows.Close()

	var files []FileRecord
	for rows.Next() {
		var record FileRecord
		var detail sql.NullString
		if err := rows.Scan(&record.RunID, &record.Position, &record.Title, &record.Outcome, &detail); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		record.Detail = detail.String
		files = append(files, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run files: %w", err)
	}
	return files, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var startedAt string
	var finishedAt, errMsg sql.NullString

	err := rows.Scan(
		&run.ID, &run.Directory, &run.Status, &startedAt, &finishedAt,
		&run.Counts.Records, &run.Counts.Written, &run.Counts.Skipped, &run.Counts.Failed,
		&errMsg,
	)
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	if finishedAt.Valid {
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt.String); err != nil {
			return Run{}, fmt.Errorf("parse finished_at: %w", err)
		}
	}
	run.Error = errMsg.String
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
