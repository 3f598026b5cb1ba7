package tui

import (
	"fmt"
	"strings"

	"github.com/mazeview/mazeview/internal/playback"
)

// timeline glyphs
const (
	glyphCompleted = "●"
	glyphActive    = "◉"
	glyphPending   = "○"
)

// renderTimeline renders the step marker row and progress bar.
func renderTimeline(m *Model, width int) string {
	n := m.pc.StepCount()

	title := panelTitleStyle.Render("Timeline")
	if m.pc.Playing() {
		title += "  " + playingBadgeStyle.Render("▶ playing")
	}

	if n == 0 {
		return title + "\n" + emptyStateStyle.Render("No steps in this trajectory.")
	}

	// Marker row: markers spread across the axis by their percentage
	// position; for one step the sole marker sits at 0%.
	axisWidth := width - 2
	if axisWidth < n {
		axisWidth = n
	}
	markers := renderMarkerAxis(m.pc.MarkerStates(), axisWidth)

	// Progress bar
	filled := int(m.pc.Progress() / 100 * float64(axisWidth))
	filled = clamp(filled, 0, axisWidth)
	bar := progressFillStyle.Render(strings.Repeat("█", filled)) +
		progressEmptyStyle.Render(strings.Repeat("░", axisWidth-filled))

	// Step counter with prev/next affordances, dimmed when disabled.
	prev := controlStyle.Render("←")
	if m.pc.AtStart() {
		prev = controlDisabledStyle.Render("←")
	}
	next := controlStyle.Render("→")
	if m.pc.AtEnd() {
		next = controlDisabledStyle.Render("→")
	}
	counter := fmt.Sprintf("%s step %d / %d %s", prev, m.pc.Step()+1, n, next)

	return strings.Join([]string{title, markers, bar, counter}, "\n")
}

// renderMarkerAxis places one glyph per step on a fixed-width axis at
// its normalized position.
func renderMarkerAxis(states []playback.MarkerState, width int) string {
	n := len(states)
	if n == 0 || width < 1 {
		return ""
	}

	cells := make([]string, width)
	for i := range cells {
		cells[i] = progressEmptyStyle.Render("─")
	}

	for i, st := range states {
		pos := 0
		if n > 1 {
			pos = i * (width - 1) / (n - 1)
		}
		switch st {
		case playback.MarkerCompleted:
			cells[pos] = markerCompletedStyle.Render(glyphCompleted)
		case playback.MarkerActive:
			cells[pos] = markerActiveStyle.Render(glyphActive)
		default:
			cells[pos] = markerPendingStyle.Render(glyphPending)
		}
	}

	return strings.Join(cells, "")
}

// renderTimelinePanel wraps the timeline in a styled panel.
func renderTimelinePanel(m *Model, width, height int) string {
	content := renderTimeline(m, width-4)
	return panelActiveStyle.Width(width).Height(height).Render(content)
}
