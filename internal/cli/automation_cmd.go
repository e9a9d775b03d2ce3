package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAutomationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "automation",
		Short: "Run recurring content automation",
	}

	cmd.AddCommand(newAutomationExpandCmd(app))

	return cmd
}

func newAutomationExpandCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "expand",
		Short: "Generate due items from recurrence templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Automation.ExpandDue(context.Background(), time.Now())
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Println("No recurrences due.")
				return nil
			}
			fmt.Printf("Generated %d items:\n\n%s\n", len(created), formatter.FormatItemList(created))
			return nil
		},
	}
}
