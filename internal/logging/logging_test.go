package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTempFilePathUsesTimestampBaseName(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
	got := TempFilePath(dir, now)
	want := filepath.Join(dir, "sluice-20240309-143005.log")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTempFilePathIncrementsSuffixOnCollision(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)

	first := TempFilePath(dir, now)
	if err := os.WriteFile(first, nil, 0o644); err != nil {
		t.Fatalf("failed to create collision file: %v", err)
	}
	second := TempFilePath(dir, now)
	want := filepath.Join(dir, "sluice-20240309-143005-1.log")
	if second != want {
		t.Fatalf("expected %q, got %q", want, second)
	}

	if err := os.WriteFile(second, nil, 0o644); err != nil {
		t.Fatalf("failed to create collision file: %v", err)
	}
	third := TempFilePath(dir, now)
	want = filepath.Join(dir, "sluice-20240309-143005-2.log")
	if third != want {
		t.Fatalf("expected %q, got %q", want, third)
	}
}

func TestConfigureCreatesMissingDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "trace.log")
	Configure(path)
	defer Configure("")

	SetTraceEnabled(true)
	defer SetTraceEnabled(false)
	Trace("test.event", map[string]interface{}{"value": 1})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file to exist: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected trace entry to be written")
	}
}
