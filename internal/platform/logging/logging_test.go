package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTagOf(t *testing.T) {
	if tag, ok := tagOf("[HTTP] request served"); !ok || tag != "HTTP" {
		t.Errorf("tagOf = %q, %v", tag, ok)
	}
	if _, ok := tagOf("no tag here"); ok {
		t.Error("tagOf should not match untagged messages")
	}
	if _, ok := tagOf("[] empty"); ok {
		t.Error("tagOf should reject empty tags")
	}
}

func TestNew_WritesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Config{Level: "debug", Dir: dir, Filename: "test.log"})
	if err != nil {
		t.Fatal(err)
	}

	logger.InfoTag("BOOT", "hello %s", "world")
	logger.Debug("plain debug line")
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "[BOOT] hello world") {
		t.Errorf("log file missing tagged line: %s", content)
	}
	if !strings.Contains(content, "plain debug line") {
		t.Errorf("log file missing debug line: %s", content)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Config{Level: "warn", Dir: dir, Filename: "test.log"})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("should be filtered")
	logger.Warn("should appear")
	logger.Close()

	data, _ := os.ReadFile(filepath.Join(dir, "test.log"))
	if strings.Contains(string(data), "should be filtered") {
		t.Error("info line should have been filtered at warn level")
	}
	if !strings.Contains(string(data), "should appear") {
		t.Error("warn line missing")
	}
}
