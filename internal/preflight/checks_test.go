package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"phototime/internal/preflight"
)

func TestCheckDirectoryPasses(t *testing.T) {
	dir := t.TempDir()
	result := preflight.CheckDirectory(dir)
	if !result.Passed {
		t.Fatalf("check failed: %+v", result)
	}
}

func TestCheckDirectoryMissing(t *testing.T) {
	result := preflight.CheckDirectory(filepath.Join(t.TempDir(), "missing"))
	if result.Passed {
		t.Fatalf("expected failure for missing directory: %+v", result)
	}
}

func TestCheckDirectoryRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result := preflight.CheckDirectory(path)
	if result.Passed {
		t.Fatalf("expected failure for non-directory: %+v", result)
	}
	if result.Detail != "not a directory" {
		t.Fatalf("detail = %q", result.Detail)
	}
}
