package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pautahq/pauta/internal/board"
	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/repository"
	"github.com/spf13/cobra"
)

// settingsPath returns the durable settings file location, honoring the
// PAUTA_HOME override used in tests.
func settingsPath() string {
	home := os.Getenv("PAUTA_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		home = filepath.Join(userHome, ".pauta")
	}
	return filepath.Join(home, "settings.json")
}

func newBoardCmd(app *App) *cobra.Command {
	var clientRef, view string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive planning board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the board needs an interactive terminal")
			}

			ctx := context.Background()
			if _, err := app.Columns.EnsureDefaults(ctx); err != nil {
				return err
			}

			settings, err := LoadSettings(settingsPath())
			if err != nil {
				return err
			}

			model := newBoardModel(app, settings, view)
			if clientRef != "" {
				clientID, err := resolveClientID(ctx, app, clientRef)
				if err != nil {
					return err
				}
				model.state.SetActiveClient(ctx, clientID)
				settings.ClientFilter = clientID
			} else if settings.ClientFilter != "" {
				model.state.SetActiveClient(ctx, settings.ClientFilter)
			}

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&clientRef, "client", "", "Filter the board to one client")
	cmd.Flags().StringVar(&view, "view", "", "Starting view (kanban|calendar|list)")

	return cmd
}

// newCalendarCmd prints the month grid without entering the TUI, for
// non-interactive use.
func newCalendarCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the content calendar for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, mon := now.Year(), now.Month()
			if month != "" {
				t, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
				}
				year, mon = t.Year(), t.Month()
			}

			items, err := app.Items.List(context.Background(), repository.ItemFilter{})
			if err != nil {
				return err
			}

			grid := board.MonthOf(year, mon, items, time.Local)
			fmt.Println(formatter.FormatMonthGrid(grid, -1))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default current)")

	return cmd
}
