package tui

// DefaultCitation is the benchmark citation offered by the copy action.
// The exact text ships with the dataset release; the viewer copies it
// verbatim, whitespace included.
const DefaultCitation = `@misc{mazeview2025,
  title        = {MazeView: Gridworld Layout and Agent Trajectory Benchmark},
  author       = {The MazeView Contributors},
  year         = {2025},
  howpublished = {\url{https://github.com/mazeview/mazeview}}
}`

// renderCopyBadge returns the transient copy indicator for the footer,
// or "" when idle. The badge reverts automatically 2s after the copy.
func renderCopyBadge(m *Model) string {
	switch m.copyState {
	case copyCopied:
		return copiedBadgeStyle.Render("✓ citation copied")
	case copyFailed:
		return copyErrBadgeStyle.Render("✗ copy failed")
	default:
		return ""
	}
}

// Citation returns the text the copy action uses.
func (m Model) Citation() string {
	return m.citation
}
