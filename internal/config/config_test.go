package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Playback.IntervalMs != 2000 {
		t.Errorf("default interval = %d, want 2000", cfg.Playback.IntervalMs)
	}
	if cfg.PlaybackInterval() != 2*time.Second {
		t.Errorf("PlaybackInterval = %v", cfg.PlaybackInterval())
	}
	if cfg.Data.DatasetPath == "" || cfg.Data.IndexPath == "" {
		t.Error("default data paths missing")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := []byte(`
data:
  base_url: https://assets.example.org/maze
playback:
  interval_ms: 750
`)
	if err := os.WriteFile(file, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.BaseURL != "https://assets.example.org/maze" {
		t.Errorf("base_url = %q", cfg.Data.BaseURL)
	}
	if cfg.Playback.IntervalMs != 750 {
		t.Errorf("interval = %d, want 750", cfg.Playback.IntervalMs)
	}
	// Unset keys keep defaults.
	if cfg.Serve.ListenAddr == "" {
		t.Error("serve defaults lost when loading from file")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Data:     DataConfig{BaseURL: "http://x", TimeoutSeconds: 5},
		Playback: PlaybackConfig{IntervalMs: 2000},
		Logging:  LoggingConfig{Level: "info"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := valid
	bad.Playback.IntervalMs = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero interval accepted")
	}

	bad = valid
	bad.Data.BaseURL = ""
	if err := bad.Validate(); err == nil {
		t.Error("empty base_url accepted")
	}

	bad = valid
	bad.Logging.Level = "loud"
	if err := bad.Validate(); err == nil {
		t.Error("bogus log level accepted")
	}
}
