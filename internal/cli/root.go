package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitai/internal/service"
)

// App holds the services and process settings used by CLI commands.
type App struct {
	Profiles    service.ProfileService
	Coach       service.CoachService
	DefaultUser string
	HTTPAddr    string
	Logger      zerolog.Logger

	// Ping reports storage health for the HTTP server. Optional.
	Ping func(ctx context.Context) error

	// IsInteractive reports whether stdin is a terminal. Forms, spinners
	// and the chat TUI only run when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fitai" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var user string

	root := &cobra.Command{
		Use:           "fitai",
		Short:         "Personal fitness coach: profile, plans, schedule and chat",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if user != "" {
				app.DefaultUser = user
			}
		},
	}
	root.PersistentFlags().StringVarP(&user, "user", "u", "", "Act as this user ID (default from FITAI_DEFAULT_USER)")

	root.AddCommand(
		newProfileCmd(app),
		newCompleteCmd(app),
		newProgressCmd(app),
		newPlanCmd(app),
		newScheduleCmd(app),
		newChatCmd(app),
		newServeCmd(app),
	)

	return root
}
