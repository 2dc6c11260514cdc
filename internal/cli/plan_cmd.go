package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitai/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Generate workout, nutrition and sleep plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Get(ctx, app.DefaultUser)
			if err != nil {
				return app.profileErr(err)
			}

			stop := app.startSpinner(cmd, "Menyusun rencana...")
			plans := app.Coach.GeneratePlans(ctx, *p)
			stop()

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlans(plans))
			return nil
		},
	}
}

func newScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Generate this week's training schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Get(ctx, app.DefaultUser)
			if err != nil {
				return app.profileErr(err)
			}

			stop := app.startSpinner(cmd, "Menyusun jadwal...")
			days := app.Coach.GenerateSchedule(ctx, *p)
			stop()

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(days, p.Completed))
			return nil
		},
	}
}

// startSpinner shows a spinner on stderr when interactive. The returned
// func stops it.
func (a *App) startSpinner(cmd *cobra.Command, message string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}
