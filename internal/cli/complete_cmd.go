package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitai/internal/cli/formatter"
	"github.com/alexanderramin/fitai/internal/coach"
	"github.com/alexanderramin/fitai/internal/domain"
)

func newCompleteCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete <day>",
		Short: "Mark a training day as done",
		Long:  "Mark a training day as done. Day is a key (mon..sun) or a day name (Senin..Minggu).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveDayKey(args[0])
			if err != nil {
				return err
			}

			p, err := app.Profiles.SetCompletion(cmd.Context(), app.DefaultUser, key, !undo)
			if err != nil {
				return app.profileErr(err)
			}

			out := cmd.OutOrStdout()
			if undo {
				fmt.Fprintf(out, "%s %s belum selesai\n", formatter.CheckMark(false), domain.DayName(key))
			} else {
				fmt.Fprintf(out, "%s %s selesai\n", formatter.CheckMark(true), domain.DayName(key))
				fmt.Fprintln(out, formatter.FormatMotivation(coach.RandomMotivation()))
			}
			wp := p.Completed.Progress()
			fmt.Fprintln(out, formatter.RenderProgress(float64(wp.Completed)/float64(wp.Total), 21))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the day instead of marking it done")
	return cmd
}

// resolveDayKey accepts a canonical key or day name, case-insensitively.
func resolveDayKey(arg string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(arg))
	if domain.IsDayKey(s) {
		return s, nil
	}
	for _, d := range domain.Week {
		if strings.EqualFold(d.Name, s) {
			return d.Key, nil
		}
	}
	return "", &domain.ValidationError{Field: "day", Message: fmt.Sprintf("unknown day %q, use mon..sun or Senin..Minggu", arg)}
}
