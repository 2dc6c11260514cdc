package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitai/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Deps{
				Profiles:    app.Profiles,
				Coach:       app.Coach,
				DefaultUser: app.DefaultUser,
				Logger:      app.Logger,
				Ping:        app.Ping,
			})
			return server.Run(ctx, srv.HTTPServer(addr), app.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from FITAI_HTTP_ADDR)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if addr == "" {
			addr = app.HTTPAddr
		}
	}
	return cmd
}
