package tui

import (
	"fmt"
	"path"

	"github.com/charmbracelet/lipgloss"

	"github.com/mazeview/mazeview/internal/dataset"
)

// renderGallery renders the layout image grid screen.
func renderGallery(m *Model, width, height int) string {
	if m.galleryErr != "" {
		return emptyStateStyle.Render(
			"Could not load the dataset.\n\n" + m.galleryErr)
	}
	if m.catalog == nil {
		return emptyStateStyle.Render(m.spin.View() + " Loading dataset...")
	}

	sample, ok := m.catalog.Current()
	if !ok {
		// Empty dataset is a valid state, not an error.
		return lipgloss.Place(width, height,
			lipgloss.Center, lipgloss.Center,
			emptyStateStyle.Render("No layouts in this dataset."))
	}

	layouts := m.catalog.Layouts()
	heading := layoutTagStyle.Render(sample.LayoutType) +
		taskDimStyle.Render(fmt.Sprintf("  layout %d of %d  ·  %d images",
			indexOf(layouts, sample.LayoutType)+1, len(layouts), len(sample.Images)))

	if len(sample.Images) == 0 {
		return heading + "\n\n" + emptyStateStyle.Render("No images for this layout.")
	}

	grid := renderImageGrid(m, sample, width)

	// The citation block the "c" key copies verbatim.
	cite := detailSectionStyle.Render("Citation") + "\n" +
		citationStyle.Render(m.citation)

	return lipgloss.JoinVertical(lipgloss.Left, heading, "", grid, "", cite)
}

// renderImageGrid lays the image cells out in the column count dictated
// by the image count (1-2 → 2 columns, 3 → 3, 4+ → 4).
func renderImageGrid(m *Model, sample dataset.LayoutSample, width int) string {
	cols := dataset.GridColumns(len(sample.Images))
	cellWidth := width/cols - 4
	if cellWidth < 12 {
		cellWidth = 12
	}

	var rows []string
	for start := 0; start < len(sample.Images); start += cols {
		end := start + cols
		if end > len(sample.Images) {
			end = len(sample.Images)
		}
		var cells []string
		for _, img := range sample.Images[start:end] {
			cells = append(cells, renderImageCell(m, img, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderImageCell renders one image slot. A terminal cannot display the
// bitmap itself, so the cell shows the file name; a failed probe degrades
// to an inline "not found" placeholder and never an error.
func renderImageCell(m *Model, img string, width int) string {
	name := truncate(path.Base(img), width)

	switch m.imageStates[img] {
	case imageMissing:
		return cellMissingStyle.Width(width).Render("✗ not found\n" + name)
	case imageOK:
		return cellStyle.Width(width).Render("🖼 " + name + "\n" + taskDimStyle.Render(truncate(img, width-2)))
	default:
		return cellPendingStyle.Width(width).Render("… checking\n" + name)
	}
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
