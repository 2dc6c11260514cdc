package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/fitai/internal/cli/formatter"
	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/repository"
)

type profileFlags struct {
	name       string
	weight     int
	bodyFat    int
	muscleMass int
	age        int
	goal       string
}

func (f *profileFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "Display name")
	flags.IntVar(&f.weight, "weight", 0, "Body weight in kg")
	flags.IntVar(&f.bodyFat, "body-fat", 0, "Body fat percentage (0-100)")
	flags.IntVar(&f.muscleMass, "muscle-mass", 0, "Muscle mass percentage (0-100)")
	flags.IntVar(&f.age, "age", 0, "Age in years")
	flags.StringVar(&f.goal, "goal", "", "Goal: cutting, bulking or recomposition")
}

// fields returns only the flags the user actually set.
func (f *profileFlags) fields(flags *pflag.FlagSet) domain.ProfileFields {
	var out domain.ProfileFields
	if flags.Changed("name") {
		out.Name = &f.name
	}
	if flags.Changed("weight") {
		out.Weight = &f.weight
	}
	if flags.Changed("body-fat") {
		out.BodyFat = &f.bodyFat
	}
	if flags.Changed("muscle-mass") {
		out.MuscleMass = &f.muscleMass
	}
	if flags.Changed("age") {
		out.Age = &f.age
	}
	if flags.Changed("goal") {
		g := domain.Goal(f.goal)
		out.Goal = &g
	}
	return out
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your fitness profile",
	}
	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileShowCmd(app),
		newProfileEditCmd(app),
	)
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace your profile",
		Long: "Create or replace your profile. Without flags on a terminal an\n" +
			"interactive form is shown; otherwise every field flag is required.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fields := flags.fields(cmd.Flags())

			if fields.IsEmpty() && app.interactive() {
				existing, err := app.Profiles.Get(ctx, app.DefaultUser)
				if err != nil && !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				form := newProfileFormFields(existing)
				if err := profileForm(form).Run(); err != nil {
					return err
				}
				if fields, err = form.toProfileFields(); err != nil {
					return err
				}
			}

			p, err := app.Profiles.CreateOrUpdate(ctx, app.DefaultUser, fields)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context(), app.DefaultUser)
			if err != nil {
				return app.profileErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileEditCmd(app *App) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change some profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fields := flags.fields(cmd.Flags())

			if fields.IsEmpty() {
				if !app.interactive() {
					return fmt.Errorf("nothing to update: pass at least one field flag")
				}
				existing, err := app.Profiles.Get(ctx, app.DefaultUser)
				if err != nil {
					return app.profileErr(err)
				}
				form := newProfileFormFields(existing)
				if err := profileForm(form).Run(); err != nil {
					return err
				}
				if fields, err = form.toProfileFields(); err != nil {
					return err
				}
			}

			p, err := app.Profiles.Update(ctx, app.DefaultUser, fields)
			if err != nil {
				return app.profileErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

// profileErr turns a missing profile into an actionable message.
func (a *App) profileErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("no profile for user %q yet, run 'fitai profile set' first: %w", a.DefaultUser, err)
	}
	return err
}
