package cli

import (
	"context"
	"fmt"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Pull content ideas from RSS feeds",
	}

	cmd.AddCommand(newFeedPreviewCmd(app))

	return cmd
}

func newFeedPreviewCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "preview URL",
		Short: "Preview a feed's latest entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Feeds.Preview(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Feed has no entries.")
				return nil
			}

			for i, entry := range entries {
				fmt.Printf("%s %s\n", formatter.StylePurple.Render(fmt.Sprintf("%2d.", i+1)), formatter.Bold(entry.Title))
				if entry.PublishedAt != nil {
					fmt.Printf("    %s\n", formatter.Dim(formatter.HumanDate(*entry.PublishedAt)))
				}
				if entry.Description != "" {
					fmt.Printf("    %s\n", formatter.Truncate(entry.Description, 100))
				}
				if entry.Link != "" {
					fmt.Printf("    %s\n", formatter.StyleBlue.Render(entry.Link))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum entries to show")

	return cmd
}
