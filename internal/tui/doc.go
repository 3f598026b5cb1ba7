// Package tui implements the mazeview terminal user interface.
//
// Built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles libraries.
//
// Component architecture:
//
//	model.go     — root model, message routing, Init/Update
//	theme.go     — centralized color + style definitions
//	header.go    — top bar with screen context, footer with key hints
//	tasklist.go  — task selector with search (initial tasks screen)
//	timeline.go  — step marker bar + progress rendering
//	stepview.go  — step state/reasoning/action pane with summary
//	gallery.go   — layout image grid with placeholder cells
//	citation.go  — citation block + transient copy indicator
//	helpers.go   — truncation, clamping, small view helpers
package tui
