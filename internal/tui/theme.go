package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerTabStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerTabActiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorDivider)

	panelActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorBlue)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	panelTitleDimStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)
)

// Timeline
var (
	markerCompletedStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	markerActiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	markerPendingStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	progressFillStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	progressEmptyStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	playingBadgeStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	controlStyle = lipgloss.NewStyle().
			Foreground(colorText)

	controlDisabledStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)
)

// Step detail pane
var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(colorDivider)

	successBadgeStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	failureBadgeStyle = lipgloss.NewStyle().
				Foreground(colorRed)
)

// Gallery
var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	cellMissingStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorRed).
				Foreground(colorRed).
				Padding(0, 1)

	cellPendingStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDivider).
				Foreground(colorTextMuted).
				Padding(0, 1)

	layoutTagStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	errorStatusStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorBgSurface).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	copiedBadgeStyle = lipgloss.NewStyle().
				Foreground(colorBg).
				Background(colorGreen).
				Bold(true).
				Padding(0, 1)

	copyErrBadgeStyle = lipgloss.NewStyle().
				Foreground(colorBg).
				Background(colorRed).
				Bold(true).
				Padding(0, 1)
)

// Task list
var (
	taskItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	taskSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	taskDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)

// Search bar
var (
	searchBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	searchCursorStyle = lipgloss.NewStyle().
				Background(colorBlue).
				Foreground(colorBg)

	citationStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
