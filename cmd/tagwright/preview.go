package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tagwright-dev/tagwright/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		addr     string
		title    string
		watch    string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the demo document with live reload",
		Long: `Start a local server that renders the demo document on
every request. With --watch, browsers reload automatically when the
watched path changes. Prometheus metrics for the render sink are
exposed on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := preview.NewServer(preview.Options{
				Addr:          addr,
				Title:         title,
				Watch:         watch,
				WatchInterval: interval,
				Logger:        logger,
			})
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8791", "Listen address")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVarP(&watch, "watch", "w", "", "File or directory to watch for reloads")
	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "Watch polling interval")

	return cmd
}
