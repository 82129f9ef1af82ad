package config

import (
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.Logging.Diagnostics || cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected logging disabled by default, got %#v", cfg.Logging)
	}
}

func TestLoadArgsParsesFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "100", "-height", "30", "-log", "-trace", "-log-file", "/tmp/sluice-test.log"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("expected 100x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Diagnostics || !cfg.Logging.Trace {
		t.Fatalf("expected diagnostics and trace enabled, got %#v", cfg.Logging)
	}
	if cfg.Logging.FilePath != "/tmp/sluice-test.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsReadsEnvironment(t *testing.T) {
	environ := []string{
		"SLUICE_WIDTH=90",
		"SLUICE_HEIGHT=25",
		"SLUICE_LOG=true",
		"SLUICE_LOG_FILE=/tmp/env.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 25 {
		t.Fatalf("expected env dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Diagnostics || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("expected env logging config, got %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "50"}, []string{"SLUICE_WIDTH=90"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 50 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SLUICE_WIDTH=abc", "", "NOEQUALS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected malformed env ignored, got %d", cfg.App.Width)
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"-trace"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["trace"] != "true" {
		t.Fatalf("expected trace flag recorded, got %#v", cfg.Flags)
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "-trace" {
		t.Fatalf("expected argv copied, got %#v", cfg.Args)
	}
}
