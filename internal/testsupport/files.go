package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteSidecar writes a well-formed sidecar for the given media title and
// capture timestamp next to it in dir, returning the sidecar path.
func WriteSidecar(t testing.TB, dir, title string, takenAt int64) string {
	t.Helper()

	content := fmt.Sprintf(`{"title":%q,"photoTakenTime":{"timestamp":"%d"}}`, title, takenAt)
	path := filepath.Join(dir, title+".json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sidecar %s: %v", path, err)
	}
	return path
}

// WriteRawSidecar writes arbitrary sidecar content, for malformed fixtures.
func WriteRawSidecar(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sidecar %s: %v", path, err)
	}
	return path
}

// WriteMedia creates a small placeholder media file and returns its path.
func WriteMedia(t testing.TB, dir, title string) string {
	t.Helper()

	path := filepath.Join(dir, title)
	if err := os.WriteFile(path, []byte("media"), 0o644); err != nil {
		t.Fatalf("write media %s: %v", path, err)
	}
	return path
}
