package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"phototime/internal/testsupport"
)

func writeTestConfig(t *testing.T) (configPath, photosDir string) {
	t.Helper()

	base := t.TempDir()
	photosDir = filepath.Join(base, "photos")
	if err := os.MkdirAll(photosDir, 0o755); err != nil {
		t.Fatalf("mkdir photos: %v", err)
	}

	configPath = filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
log_dir = %q
journal_path = %q
`, filepath.Join(base, "logs"), filepath.Join(base, "journal.db"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, photosDir
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCommand()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRunCommandRewritesTimestamps(t *testing.T) {
	configPath, photosDir := writeTestConfig(t)
	mediaPath := testsupport.WriteMedia(t, photosDir, "a.jpg")
	testsupport.WriteSidecar(t, photosDir, "a.jpg", 1609459200)
	testsupport.WriteSidecar(t, photosDir, "b.jpg", 1609459200)

	stdout, _, err := execute(t, "--config", configPath, "run", photosDir, "--no-progress")
	if err != nil {
		t.Fatalf("run command failed: %v", err)
	}

	info, err := os.Stat(mediaPath)
	if err != nil {
		t.Fatalf("stat media: %v", err)
	}
	if !info.ModTime().Equal(time.Unix(1609459200, 0)) {
		t.Fatalf("mod time = %v, want 2021-01-01T00:00:00Z", info.ModTime())
	}

	if !strings.Contains(stdout, "Written") || !strings.Contains(stdout, "Skipped") {
		t.Fatalf("summary missing outcome rows:\n%s", stdout)
	}
}

func TestRunCommandRecursiveIsRejected(t *testing.T) {
	configPath, photosDir := writeTestConfig(t)
	testsupport.WriteSidecar(t, photosDir, "a.jpg", 1609459200)

	_, _, err := execute(t, "--config", configPath, "run", photosDir, "--recursive", "--no-progress")
	if err == nil {
		t.Fatal("expected error for --recursive")
	}
	if !strings.Contains(err.Error(), "not implemented") {
		t.Fatalf("error %q does not mention unimplemented", err)
	}

	// The rejection happens before the journal, log directory, or target
	// directory are touched.
	base := filepath.Dir(configPath)
	if _, err := os.Stat(filepath.Join(base, "journal.db")); !os.IsNotExist(err) {
		t.Fatal("journal database was created before the recursive rejection")
	}
	if _, err := os.Stat(filepath.Join(base, "logs")); !os.IsNotExist(err) {
		t.Fatal("log directory was created before the recursive rejection")
	}
}

func TestRunCommandReportsBatchError(t *testing.T) {
	configPath, photosDir := writeTestConfig(t)
	testsupport.WriteRawSidecar(t, photosDir, "broken.json", "{")

	_, _, err := execute(t, "--config", configPath, "run", photosDir, "--no-progress")
	if err == nil {
		t.Fatal("expected error for malformed sidecar")
	}
	if !strings.Contains(err.Error(), "broken.json") {
		t.Fatalf("error %q does not name offending file", err)
	}
}

func TestScanCommandListsWithoutWriting(t *testing.T) {
	configPath, photosDir := writeTestConfig(t)
	mediaPath := testsupport.WriteMedia(t, photosDir, "a.jpg")
	testsupport.WriteSidecar(t, photosDir, "a.jpg", 1609459200)

	before, err := os.Stat(mediaPath)
	if err != nil {
		t.Fatalf("stat media: %v", err)
	}

	stdout, _, err := execute(t, "--config", configPath, "scan", photosDir)
	if err != nil {
		t.Fatalf("scan command failed: %v", err)
	}
	if !strings.Contains(stdout, "a.jpg") || !strings.Contains(stdout, "2021-01-01T00:00:00Z") {
		t.Fatalf("scan output missing record:\n%s", stdout)
	}

	after, err := os.Stat(mediaPath)
	if err != nil {
		t.Fatalf("stat media: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("scan must not modify media timestamps")
	}
}

func TestHistoryCommandShowsCompletedRun(t *testing.T) {
	configPath, photosDir := writeTestConfig(t)
	testsupport.WriteMedia(t, photosDir, "a.jpg")
	testsupport.WriteSidecar(t, photosDir, "a.jpg", 1609459200)

	if _, _, err := execute(t, "--config", configPath, "run", photosDir, "--no-progress"); err != nil {
		t.Fatalf("run command failed: %v", err)
	}

	stdout, _, err := execute(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history command failed: %v", err)
	}
	if !strings.Contains(stdout, photosDir) || !strings.Contains(stdout, "Completed") {
		t.Fatalf("history output missing run:\n%s", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout, "phototime") {
		t.Fatalf("version output missing binary name:\n%s", stdout)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	stdout, _, err := execute(t, "--config", configPath, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, configPath) {
		t.Fatalf("init output missing path:\n%s", stdout)
	}

	if _, _, err := execute(t, "--config", configPath, "config", "init"); err == nil {
		t.Fatal("expected error when config already exists")
	}

	stdout, _, err = execute(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, "[paths]") || !strings.Contains(stdout, "extension") {
		t.Fatalf("config show output incomplete:\n%s", stdout)
	}
}
