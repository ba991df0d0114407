package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/pulse/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only analytics API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			server := api.NewServer(app.Analytics, logger)

			logger.Info("starting api server", "addr", listen)
			return server.Serve(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", app.ListenAddr, "Address to listen on")

	return cmd
}
