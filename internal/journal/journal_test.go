package journal_test

import (
	"context"
	"errors"
	"testing"

	"phototime/internal/journal"
	"phototime/internal/match"
	"phototime/internal/testsupport"
)

func openJournal(t *testing.T) *journal.Journal {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	j, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRunLifecycle(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	runID, err := j.BeginRun(ctx, "/photos/takeout")
	if err != nil {
		t.Fatalf("BeginRun failed: %v", err)
	}

	results := []match.FileResult{
		{Title: "a.jpg", Outcome: match.OutcomeWritten},
		{Title: "b.jpg", Outcome: match.OutcomeSkipped},
		{Title: "c.jpg", Outcome: match.OutcomeFailed, Err: errors.New("operation not permitted")},
	}
	for i, res := range results {
		if err := j.RecordFile(ctx, runID, i, res); err != nil {
			t.Fatalf("RecordFile %d failed: %v", i, err)
		}
	}

	counts := journal.Counts{Records: 3, Written: 1, Skipped: 1, Failed: 1}
	if err := j.FinishRun(ctx, runID, journal.StatusCompleted, counts, nil); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	runs, err := j.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != runID || run.Status != journal.StatusCompleted {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.Counts != counts {
		t.Fatalf("counts = %+v, want %+v", run.Counts, counts)
	}
	if run.FinishedAt.Before(run.StartedAt) {
		t.Fatalf("finished_at %v before started_at %v", run.FinishedAt, run.StartedAt)
	}

	files, err := j.FilesForRun(ctx, runID)
	if err != nil {
		t.Fatalf("FilesForRun failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d file records, want 3", len(files))
	}
	if files[0].Title != "a.jpg" || files[0].Outcome != string(match.OutcomeWritten) {
		t.Fatalf("unexpected first file record: %+v", files[0])
	}
	if files[2].Detail != "operation not permitted" {
		t.Fatalf("failed record lost its detail: %+v", files[2])
	}
}

func TestFinishRunRecordsError(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	runID, err := j.BeginRun(ctx, "/photos/takeout")
	if err != nil {
		t.Fatalf("BeginRun failed: %v", err)
	}

	batchErr := errors.New("sidecar malformed: parse b.jpg.json")
	if err := j.FinishRun(ctx, runID, journal.StatusFailed, journal.Counts{}, batchErr); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	runs, err := j.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if runs[0].Status != journal.StatusFailed {
		t.Fatalf("status = %s, want failed", runs[0].Status)
	}
	if runs[0].Error != batchErr.Error() {
		t.Fatalf("error = %q, want %q", runs[0].Error, batchErr)
	}
}

func TestFinishRunUnknownID(t *testing.T) {
	j := openJournal(t)
	err := j.FinishRun(context.Background(), "no-such-run", journal.StatusCompleted, journal.Counts{}, nil)
	if err == nil {
		t.Fatal("expected error for unknown run id")
	}
}

func TestListRunsHonorsLimit(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		runID, err := j.BeginRun(ctx, "/photos/takeout")
		if err != nil {
			t.Fatalf("BeginRun failed: %v", err)
		}
		if err := j.FinishRun(ctx, runID, journal.StatusCompleted, journal.Counts{}, nil); err != nil {
			t.Fatalf("FinishRun failed: %v", err)
		}
	}

	runs, err := j.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
}

func TestReopenValidatesSchemaVersion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	j, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	reopened.Close()
}
