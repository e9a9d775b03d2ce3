package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Schedule and publish content",
	}

	cmd.AddCommand(
		newPublishModeCmd(app),
		newPublishScheduleCmd(app),
		newPublishNowCmd(app),
		newPublishRetryCmd(app),
		newPublishRunDueCmd(app),
	)

	return cmd
}

func newPublishModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mode ITEM",
		Short: "Show how an item will publish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, itemID)
			if err != nil {
				return err
			}
			mode, err := app.Publish.Mode(ctx, item)
			if err != nil {
				return err
			}

			fmt.Printf("%s  %s\n", formatter.Bold(item.Title), formatter.ModePill(mode))
			if mode == domain.ModeManual && item.Platform != "" {
				fmt.Println(formatter.Dim("Connect a " + string(item.Platform) + " account to publish automatically."))
			}
			return nil
		},
	}
}

func newPublishScheduleCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "schedule ITEM",
		Short: "Schedule an item for publication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, itemID)
			if err != nil {
				return err
			}

			if at != "" {
				t, err := parseScheduledAt(at)
				if err != nil {
					return err
				}
				item.ScheduledAt = t
			}

			outcome, err := app.Publish.Schedule(ctx, item)
			if err != nil {
				return err
			}

			when := item.ScheduledAt.Local().Format("Mon 02 Jan 15:04")
			switch {
			case outcome.RemoteScheduled:
				fmt.Printf("Scheduled %s for %s %s\n", item.Title, when, formatter.StyleGreen.Render("(remote confirmed)"))
			case outcome.Mode == domain.ModeAuto:
				fmt.Printf("Scheduled %s for %s\n", item.Title, when)
				fmt.Println(formatter.Dim("Local dispatch: " + outcome.Fallback))
			default:
				fmt.Printf("Scheduled %s for %s %s\n", item.Title, when, formatter.ModePill(outcome.Mode))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Publication time (YYYY-MM-DD HH:MM, local)")

	return cmd
}

func newPublishNowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "now ITEM",
		Short: "Publish an item immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Publish.PublishNow(ctx, itemID); err != nil {
				return err
			}
			fmt.Printf("Published item %s\n", itemID[:8])
			return nil
		},
	}
}

func newPublishRetryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "retry ITEM",
		Short: "Retry a failed publication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Publish.Retry(ctx, itemID); err != nil {
				return err
			}
			fmt.Printf("Published item %s\n", itemID[:8])
			return nil
		},
	}
}

func newPublishRunDueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run-due",
		Short: "Publish every scheduled item whose time has arrived",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Publish.RunDue(context.Background(), time.Now())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Println("Nothing due.")
				return nil
			}
			fmt.Printf("Processed %d due items\n", n)
			return nil
		},
	}
}
