// Package cmd wires the mazeview command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mazeview/mazeview/internal/client"
	"github.com/mazeview/mazeview/internal/config"
	"github.com/mazeview/mazeview/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd is the base command; running it bare opens the viewer.
var rootCmd = &cobra.Command{
	Use:   "mazeview",
	Short: "Terminal viewer for gridworld benchmark datasets and trajectories",
	Long: `mazeview browses the published benchmark assets: the per-layout
image gallery, and recorded agent trajectories with step playback.

Data is fetched from the configured base URL; use "mazeview serve" to
publish a local asset directory during dataset development.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

// applyFlagOverrides lets common flags win over file and env config.
func applyFlagOverrides(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("base-url"); f != nil && f.Changed {
		cfg.Data.BaseURL = f.Value.String()
	}
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default ~/.mazeview/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "",
		"asset base URL (overrides config)")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the shared file logger from config.
func newLogger() (*zap.Logger, error) {
	logger, err := logging.New(logging.Options{
		File:       cfg.Logging.File,
		Level:      cfg.Logging.Level,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return logger, nil
}

// newClient builds the asset fetch client from config.
func newClient(logger *zap.Logger) (*client.Client, error) {
	return client.New(client.Options{
		BaseURL:     cfg.Data.BaseURL,
		DatasetPath: cfg.Data.DatasetPath,
		IndexPath:   cfg.Data.IndexPath,
		Timeout:     cfg.FetchTimeout(),
		Logger:      logger,
	})
}
