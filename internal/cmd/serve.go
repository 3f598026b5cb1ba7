package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mazeview/mazeview/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a local asset directory over HTTP",
	Long: `Publishes a directory of dataset assets (JSON index, JSONL dataset,
images) for the viewer to fetch. Intended for local dataset development;
production deployments serve the same files from any static host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		srv := server.New(server.Config{
			ListenAddr: cfg.Serve.ListenAddr,
			AssetDir:   cfg.Serve.AssetDir,
			Watch:      cfg.Serve.Watch,
		}, logger)

		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Start(ctx); err != nil {
			return err
		}
		fmt.Printf("Serving %s on http://%s (ctrl+c to stop)\n",
			cfg.Serve.AssetDir, srv.Addr())

		<-ctx.Done()
		return srv.Stop()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAssetDir, "dir", "", "asset directory (overrides config)")
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (overrides config)")
	serveCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if flagAssetDir != "" {
			cfg.Serve.AssetDir = flagAssetDir
		}
		if flagListen != "" {
			cfg.Serve.ListenAddr = flagListen
		}
	}
}

var (
	flagAssetDir string
	flagListen   string
)
