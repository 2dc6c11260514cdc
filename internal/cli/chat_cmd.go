package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitai/internal/cli/formatter"
	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/repository"
)

func newChatCmd(app *App) *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the fitness assistant a question",
		Long: "Ask the fitness assistant a question. With no message on a terminal,\n" +
			"or with --tui, an interactive chat session starts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			message := strings.TrimSpace(strings.Join(args, " "))

			p, err := app.chatProfile(ctx)
			if err != nil {
				return err
			}

			if tui || message == "" {
				if !app.interactive() {
					if message == "" {
						return &domain.ValidationError{Field: "message", Message: "is required"}
					}
					return fmt.Errorf("--tui needs an interactive terminal")
				}
				_, err := tea.NewProgram(newChatView(ctx, app, p, message), tea.WithContext(ctx)).Run()
				return err
			}

			stop := app.startSpinner(cmd, "Berpikir...")
			reply, err := app.Coach.Chat(ctx, message, p)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChatReply(reply))
			return nil
		},
	}

	cmd.Flags().BoolVar(&tui, "tui", false, "Open the interactive chat view")
	return cmd
}

// chatProfile loads the acting user's profile for chat context. A missing
// profile is not an error.
func (a *App) chatProfile(ctx context.Context) (*domain.Profile, error) {
	p, err := a.Profiles.Get(ctx, a.DefaultUser)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}
