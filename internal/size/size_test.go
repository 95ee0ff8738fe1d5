package size

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, path string, n int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte("a"), n), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTotalKBEmpty(t *testing.T) {
	if got := TotalKB(nil); got != 0 {
		t.Errorf("TotalKB(nil) = %d, want 0", got)
	}
	if got := TotalKB([]string{}); got != 0 {
		t.Errorf("TotalKB([]) = %d, want 0", got)
	}
}

func TestTotalKBSumsAndRoundsDown(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, filepath.Join(dir, "a"), 1024)
	writeBytes(t, filepath.Join(dir, "b"), 2048)
	writeBytes(t, filepath.Join(dir, "c"), 100) // fractional remainder rounds down

	got := TotalKB([]string{
		filepath.Join(dir, "a"),
		filepath.Join(dir, "b"),
		filepath.Join(dir, "c"),
	})
	if got != 3 {
		t.Errorf("TotalKB = %d, want 3", got)
	}
}

func TestTotalKBRecursesDirectories(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, filepath.Join(dir, "app", "x"), 1024)
	writeBytes(t, filepath.Join(dir, "app", "nested", "y"), 1024)

	if got := TotalKB([]string{filepath.Join(dir, "app")}); got != 2 {
		t.Errorf("TotalKB = %d, want 2", got)
	}
}

func TestTotalKBToleratesMissingPaths(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, filepath.Join(dir, "a"), 4096)

	got := TotalKB([]string{
		filepath.Join(dir, "a"),
		filepath.Join(dir, "does-not-exist"),
	})
	if got != 4 {
		t.Errorf("TotalKB = %d, want 4", got)
	}
}
