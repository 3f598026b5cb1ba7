package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logs", "mazeview.log")

	logger, err := New(Options{File: file, Level: "debug"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("viewer started", zap.String("task", "t1"))
	logger.Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), `"viewer started"`) {
		t.Errorf("log entry missing: %s", data)
	}
	if !strings.Contains(string(data), `"task":"t1"`) {
		t.Errorf("structured field missing: %s", data)
	}
}

func TestNewEmptyFileIsNop(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Must not panic or create files.
	logger.Info("discarded")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
