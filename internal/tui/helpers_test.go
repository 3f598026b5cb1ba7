package tui

import (
	"strings"
	"testing"

	"github.com/mazeview/mazeview/internal/playback"
)

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 8); got != "hello..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("hi", 8); got != "hi" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello", 0); got != "" {
		t.Errorf("truncate zero = %q", got)
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 0, 3) != 3 || clamp(-1, 0, 3) != 0 || clamp(2, 0, 3) != 2 {
		t.Error("clamp misbehaves")
	}
}

func TestVisibleRange(t *testing.T) {
	start, end := visibleRange(0, 10, 5)
	if start != 0 || end != 5 {
		t.Errorf("visibleRange(0) = [%d,%d)", start, end)
	}
	start, end = visibleRange(7, 10, 5)
	if start != 3 || end != 8 {
		t.Errorf("visibleRange(7) = [%d,%d)", start, end)
	}
	start, end = visibleRange(9, 10, 5)
	if end != 10 {
		t.Errorf("visibleRange(9) end = %d", end)
	}
}

func TestRenderMarkerAxisStates(t *testing.T) {
	states := []playback.MarkerState{
		playback.MarkerCompleted,
		playback.MarkerActive,
		playback.MarkerPending,
	}
	axis := renderMarkerAxis(states, 21)
	if !strings.Contains(axis, glyphCompleted) ||
		!strings.Contains(axis, glyphActive) ||
		!strings.Contains(axis, glyphPending) {
		t.Errorf("axis missing marker glyphs: %q", axis)
	}
}

func TestRenderMarkerAxisSingleStep(t *testing.T) {
	// One marker goes to position 0 with no division by zero.
	axis := renderMarkerAxis([]playback.MarkerState{playback.MarkerActive}, 10)
	if !strings.HasPrefix(stripANSI(axis), glyphActive) {
		t.Errorf("sole marker not at 0%%: %q", axis)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line too wide: %q", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five" {
		t.Errorf("words lost: %v", lines)
	}
}

// stripANSI removes escape sequences so prefix checks see glyphs only.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
