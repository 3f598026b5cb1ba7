package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mazeview/mazeview/internal/clipboard"
	"github.com/mazeview/mazeview/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func runBrowse() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	fetcher, err := newClient(logger)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Fetcher:          fetcher,
		Copier:           clipboard.New(),
		Logger:           logger,
		Citation:         tui.DefaultCitation,
		PlaybackInterval: cfg.PlaybackInterval(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
