package tui

import (
	"fmt"
	"strings"

	"github.com/mazeview/mazeview/pkg/timeutil"
)

// renderStepView renders the current step's state, reasoning, and action,
// with the trajectory summary underneath.
func renderStepView(m *Model, width, height int) string {
	title := panelTitleDimStyle.Render("Step")

	traj := m.pc.Trajectory()
	if traj == nil {
		return title + "\n\n" + emptyStateStyle.Render("Select a trajectory to view steps.")
	}

	step, ok := m.pc.CurrentStep()
	if !ok {
		return title + "\n\n" + emptyStateStyle.Render("This trajectory has no steps.")
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	// ── State ──

	lines = append(lines, detailRow("Image", m.fetcher.ImageURL(step.State.Image)))
	lines = append(lines, detailRow("State", step.State.Description))

	// ── Reasoning ──

	if step.Reasoning != "" {
		lines = append(lines, "")
		lines = append(lines, detailSectionStyle.Render("Reasoning"))
		for _, line := range wrapText(step.Reasoning, width-2) {
			lines = append(lines, taskDimStyle.Render(line))
		}
	}

	// ── Action ──

	lines = append(lines, "")
	lines = append(lines, detailRow("Action", step.Action))

	// ── Trajectory summary ──

	lines = append(lines, "")
	lines = append(lines, detailSectionStyle.Render("Trajectory"))

	badge := failureBadgeStyle.Render("✗ failed")
	if traj.Success {
		badge = successBadgeStyle.Render("✓ success")
	}
	lines = append(lines, detailRow("Name", traj.Name)+"  "+badge)
	if traj.Description != "" {
		lines = append(lines, detailRow("About", truncate(traj.Description, width-10)))
	}
	lines = append(lines, detailRow("Score", fmt.Sprintf("%.2f", traj.ReasoningScore)))
	lines = append(lines, detailRow("Time", timeutil.FormatSeconds(traj.CompletionTime)))

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// renderStepPanel wraps the step view in a styled panel.
func renderStepPanel(m *Model, width, height int) string {
	content := renderStepView(m, width-4, height-2)
	return panelStyle.Width(width).Height(height).Render(content)
}

func detailRow(label, value string) string {
	return detailLabelStyle.Render(label) + "  " + detailValueStyle.Render(value)
}

// wrapText breaks s into lines no wider than width, on word boundaries.
func wrapText(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}
