package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mazeview/mazeview/pkg/timeutil"
)

// renderTaskList renders the task selection screen.
func renderTaskList(m *Model) string {
	tasks := m.filteredTasks()

	if len(tasks) == 0 {
		text := "No tasks in the index."
		if m.searchQuery != "" {
			text = fmt.Sprintf("No tasks match %q.", m.searchQuery)
		}
		empty := emptyStateStyle.Render(text)
		return lipgloss.Place(
			m.width,
			m.height-3, // minus header + footer
			lipgloss.Center,
			lipgloss.Center,
			empty,
		)
	}

	title := panelTitleStyle.Render("Tasks")
	count := taskDimStyle.Render(fmt.Sprintf("  %d of %d", len(tasks), len(m.index.Tasks)))
	heading := title + count
	if t, err := timeutil.ParseUpdated(m.index.LastUpdated); err == nil {
		heading += taskDimStyle.Render("  ·  updated " + timeutil.RelativeTime(t))
	}

	var lines []string
	lines = append(lines, heading)
	lines = append(lines, "")

	maxVisible := m.height - 6
	if maxVisible < 5 {
		maxVisible = 5
	}
	start, end := visibleRange(m.selectedTask, len(tasks), maxVisible)

	for i := start; i < end; i++ {
		t := tasks[i]

		// Loaded tasks get a filled dot; the current one is highlighted.
		dot := taskDimStyle.Render("○")
		if t.ID == m.taskID {
			dot = markerCompletedStyle.Render("●")
		}

		desc := taskDimStyle.Render(truncate(t.Description, m.width-len(t.Name)-16))
		content := fmt.Sprintf("%s  %s  %s", dot, t.Name, desc)

		if i == m.selectedTask {
			lines = append(lines, taskSelectedStyle.Width(m.width-4).Render(content))
		} else {
			lines = append(lines, taskItemStyle.Width(m.width-4).Render(content))
		}
	}

	return strings.Join(lines, "\n")
}
