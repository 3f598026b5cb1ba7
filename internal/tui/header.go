package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	MAZEVIEW │ Trajectories · Gallery │ navigate-4room │ run 2/5
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("MAZEVIEW")
	sep := headerSepStyle.Render(" │ ")

	tasksTab := headerTabStyle.Render("Trajectories")
	galleryTab := headerTabStyle.Render("Gallery")
	if m.screen == ScreenTasks {
		tasksTab = headerTabActiveStyle.Render("Trajectories")
	} else {
		galleryTab = headerTabActiveStyle.Render("Gallery")
	}

	parts := []string{brand, sep, tasksTab, headerSepStyle.Render(" · "), galleryTab}

	switch m.screen {
	case ScreenTasks:
		if m.taskData != nil && !m.showTaskList {
			parts = append(parts, sep)
			parts = append(parts, headerMetaStyle.Render(m.taskData.TaskName))
			if id := m.currentTrajectoryID(); id != "" {
				parts = append(parts, sep)
				parts = append(parts, headerMetaStyle.Render(fmt.Sprintf(
					"%s (%d/%d)", id, m.trajIdx+1, m.taskData.Trajectories.Len())))
			}
		}
	case ScreenGallery:
		if m.catalog != nil && m.catalog.Selected() != "" {
			parts = append(parts, sep)
			parts = append(parts, headerMetaStyle.Render(fmt.Sprintf(
				"layout %s", m.catalog.Selected())))
		}
	}

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints and the
// transient citation-copy badge.
func renderFooter(m *Model) string {
	var left, right string

	switch {
	case m.searchMode:
		cursor := searchCursorStyle.Render(" ")
		left = searchBarStyle.Render(fmt.Sprintf("/ %s%s", m.searchQuery, cursor))
		right = renderHints([]hint{
			{"enter", "filter"},
			{"esc", "cancel"},
		})

	case m.screen == ScreenGallery:
		left = renderStatus(m)
		right = renderHints([]hint{
			{"←→", "layout"},
			{"tab", "trajectories"},
			{"c", "cite"},
			{"q", "quit"},
		})

	case m.showTaskList:
		left = renderStatus(m)
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"enter", "open"},
			{"/", "search"},
			{"tab", "gallery"},
			{"c", "cite"},
			{"q", "quit"},
		})

	default:
		left = renderStatus(m)
		right = renderHints([]hint{
			{"←→", "step"},
			{"space", "play"},
			{"↑↓", "trajectory"},
			{"esc", "tasks"},
			{"c", "cite"},
			{"q", "quit"},
		})
	}

	if badge := renderCopyBadge(m); badge != "" {
		left = badge + " " + left
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

func renderStatus(m *Model) string {
	if m.statusMsg == "" {
		return ""
	}
	if strings.HasPrefix(m.statusMsg, "Error") {
		return errorStatusStyle.Render(m.statusMsg)
	}
	return statusStyle.Render(m.statusMsg)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
