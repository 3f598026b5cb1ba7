// Package timeutil provides time formatting utilities for mazeview.
//
// Trajectory metadata stores completion times as seconds (float64) and
// the task index stamps lastUpdated as RFC 3339. This package converts
// both into the short human-readable forms used by the TUI.
package timeutil

import (
	"fmt"
	"time"
)

// FormatSeconds formats a completion time in seconds.
// Examples: "450ms", "1.2s", "2m 15.3s"
func FormatSeconds(s float64) string {
	if s < 0 {
		s = 0
	}
	if s < 1 {
		return fmt.Sprintf("%dms", int(s*1000))
	}
	if s < 60 {
		return fmt.Sprintf("%.1fs", s)
	}
	minutes := int(s / 60)
	remaining := s - float64(minutes*60)
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}

// ParseUpdated parses a task index lastUpdated stamp. Accepts RFC 3339
// and the date-only form some generators emit.
func ParseUpdated(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// RelativeTime returns a human-readable relative time string.
// Examples: "just now", "5s ago", "2m ago", "1h ago"
func RelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}
