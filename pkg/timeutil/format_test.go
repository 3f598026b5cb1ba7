package timeutil

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.45, "450ms"},
		{1.23, "1.2s"},
		{59.96, "60.0s"},
		{135.3, "2m 15.3s"},
		{-3, "0ms"},
	}
	for _, c := range cases {
		if got := FormatSeconds(c.in); got != c.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseUpdated(t *testing.T) {
	if _, err := ParseUpdated("2025-06-01T10:30:00Z"); err != nil {
		t.Errorf("RFC3339 stamp rejected: %v", err)
	}
	if _, err := ParseUpdated("2025-06-01"); err != nil {
		t.Errorf("date-only stamp rejected: %v", err)
	}
	if _, err := ParseUpdated("last tuesday"); err == nil {
		t.Error("expected error for garbage stamp")
	}
}

func TestRelativeTime(t *testing.T) {
	if got := RelativeTime(time.Now()); got != "just now" {
		t.Errorf("RelativeTime(now) = %q, want just now", got)
	}
	if got := RelativeTime(time.Now().Add(-5 * time.Minute)); got != "5m ago" {
		t.Errorf("RelativeTime(-5m) = %q, want 5m ago", got)
	}
	if got := RelativeTime(time.Now().Add(-49 * time.Hour)); got != "2d ago" {
		t.Errorf("RelativeTime(-49h) = %q, want 2d ago", got)
	}
}
