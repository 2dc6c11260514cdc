package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitai/internal/cli/formatter"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show this week's training progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wp, err := app.Profiles.Progress(ctx, app.DefaultUser)
			if err != nil {
				return app.profileErr(err)
			}
			p, err := app.Profiles.Get(ctx, app.DefaultUser)
			if err != nil {
				return app.profileErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(*wp, p.Completed))
			return nil
		},
	}
}
