package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage planning items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemInspectCmd(app),
		newItemUpdateCmd(app),
		newItemMoveCmd(app),
		newItemPlanCmd(app),
		newItemThreadCmd(app),
		newItemRecurCmd(app),
		newItemStatusCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func parseScheduledAt(s string) (*time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule time %q, expected YYYY-MM-DD HH:MM: %w", s, err)
	}
	return &t, nil
}

func parseDate(s string) (*time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return &t, nil
}

func newItemAddCmd(app *App) *cobra.Command {
	var title, content, contentType, priority, clientRef, columnRef, assigned, due, at string
	var media []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a planning item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			columnID, err := resolveColumnID(ctx, app, columnRef)
			if err != nil {
				return err
			}

			item := &domain.PlanningItem{
				Title:       title,
				Content:     content,
				ContentType: domain.ContentType(contentType),
				Priority:    domain.Priority(priority),
				ColumnID:    columnID,
				AssignedTo:  assigned,
				MediaURLs:   media,
			}

			if clientRef != "" {
				clientID, err := resolveClientID(ctx, app, clientRef)
				if err != nil {
					return err
				}
				item.ClientID = clientID
			}
			if due != "" {
				d, err := parseDate(due)
				if err != nil {
					return err
				}
				item.DueDate = d
			}
			if at != "" {
				t, err := parseScheduledAt(at)
				if err != nil {
					return err
				}
				item.ScheduledAt = t
			}

			if err := app.Items.Create(ctx, item); err != nil {
				return err
			}
			fmt.Printf("Created item %s [%s]\n", item.Title, item.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&content, "content", "", "Post content")
	cmd.Flags().StringVar(&contentType, "type", "tweet", "Content type (tweet|thread|post|reel|story|linkedin_post|video_script|blog_post)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|urgent)")
	cmd.Flags().StringVar(&clientRef, "client", "", "Owning client")
	cmd.Flags().StringVar(&columnRef, "column", "Ideas", "Board column")
	cmd.Flags().StringVar(&assigned, "assign", "", "Assignee")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Scheduled time (YYYY-MM-DD HH:MM, local)")
	cmd.Flags().StringArrayVar(&media, "media", nil, "Media URL (repeatable)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var clientRef, platform, status, priority, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List planning items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter := repository.ItemFilter{
				Platform: domain.Platform(platform),
				Status:   domain.ItemStatus(status),
				Priority: domain.Priority(priority),
				Search:   search,
			}
			if clientRef != "" {
				clientID, err := resolveClientID(ctx, app, clientRef)
				if err != nil {
					return err
				}
				filter.ClientID = clientID
			}

			items, err := app.Items.List(ctx, filter)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No items found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatItemList(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientRef, "client", "", "Filter by client")
	cmd.Flags().StringVar(&platform, "platform", "", "Filter by platform")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVar(&search, "search", "", "Search title and content")

	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ITEM",
		Short: "Show item details",
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

			data := formatter.ItemInspectData{Item: item, Mode: domain.ModeManual}
			if mode, err := app.Publish.Mode(ctx, item); err == nil {
				data.Mode = mode
			}
			if item.ClientID != "" {
				data.Client, _ = app.Clients.GetByID(ctx, item.ClientID)
			}
			data.Column, _ = app.Columns.GetByID(ctx, item.ColumnID)

			fmt.Printf("%s\n", formatter.FormatItemInspect(data))
			return nil
		},
	}
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var title, content, contentType, priority, clientRef, assigned, due, at string
	var media []string
	var clearDates bool

	cmd := &cobra.Command{
		Use:   "update ITEM",
		Short: "Update a planning item",
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

			if cmd.Flags().Changed("title") {
				item.Title = title
			}
			if cmd.Flags().Changed("content") {
				item.Content = content
				item.Metadata.ThreadTweets = nil
			}
			if cmd.Flags().Changed("type") {
				item.ContentType = domain.ContentType(contentType)
			}
			if cmd.Flags().Changed("priority") {
				item.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("client") {
				if clientRef == "" {
					item.ClientID = ""
				} else {
					clientID, err := resolveClientID(ctx, app, clientRef)
					if err != nil {
						return err
					}
					item.ClientID = clientID
				}
			}
			if cmd.Flags().Changed("assign") {
				item.AssignedTo = assigned
			}
			if cmd.Flags().Changed("media") {
				item.MediaURLs = media
			}
			if clearDates {
				item.DueDate = nil
				item.ScheduledAt = nil
			}
			if cmd.Flags().Changed("due") {
				d, err := parseDate(due)
				if err != nil {
					return err
				}
				item.DueDate = d
			}
			if cmd.Flags().Changed("at") {
				t, err := parseScheduledAt(at)
				if err != nil {
					return err
				}
				item.ScheduledAt = t
			}

			if err := app.Items.Update(ctx, item); err != nil {
				return err
			}
			fmt.Printf("Updated item %s\n", item.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&content, "content", "", "Post content")
	cmd.Flags().StringVar(&contentType, "type", "", "Content type")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority")
	cmd.Flags().StringVar(&clientRef, "client", "", "Owning client (empty to unassign)")
	cmd.Flags().StringVar(&assigned, "assign", "", "Assignee")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Scheduled time (YYYY-MM-DD HH:MM, local)")
	cmd.Flags().StringArrayVar(&media, "media", nil, "Media URL (repeatable, replaces existing)")
	cmd.Flags().BoolVar(&clearDates, "clear-dates", false, "Clear due date and scheduled time")

	return cmd
}

func newItemMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ITEM COLUMN",
		Short: "Move an item to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			columnID, err := resolveColumnID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Items.MoveToColumn(ctx, itemID, columnID); err != nil {
				return err
			}
			fmt.Printf("Moved item %s to %s\n", itemID[:8], args[1])
			return nil
		},
	}
}

func newItemPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan ITEM DATE",
		Short: "Move an item's calendar placement to a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := parseDate(args[1])
			if err != nil {
				return err
			}
			moved, err := app.Items.RescheduleDay(ctx, itemID, *day)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Println("No change: item is already on that day or has no calendar placement.")
				return nil
			}
			fmt.Printf("Planned item %s for %s\n", itemID[:8], args[1])
			return nil
		},
	}
}

func newItemThreadCmd(app *App) *cobra.Command {
	var tweets []string

	cmd := &cobra.Command{
		Use:   "thread ITEM",
		Short: "Replace a thread item's tweets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}

			segments := make([]domain.ThreadSegment, 0, len(tweets))
			for _, text := range tweets {
				segments = append(segments, domain.ThreadSegment{Text: strings.TrimSpace(text)})
			}
			if err := app.Items.SetThread(ctx, itemID, segments); err != nil {
				return err
			}
			fmt.Printf("Saved thread with %d tweets\n", len(segments))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&tweets, "tweet", nil, "Tweet text (repeatable, in order)")
	_ = cmd.MarkFlagRequired("tweet")

	return cmd
}

func newItemRecurCmd(app *App) *cobra.Command {
	var recurType, days, at, until string

	cmd := &cobra.Command{
		Use:   "recur ITEM",
		Short: "Set an item's recurrence schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}

			cfg := domain.RecurrenceConfig{
				Type: domain.RecurrenceType(recurType),
				Time: at,
			}
			if days != "" {
				parsed, err := domain.ParseWeekdays(days)
				if err != nil {
					return err
				}
				cfg.Days = parsed
			}
			if until != "" {
				end, err := parseDate(until)
				if err != nil {
					return err
				}
				cfg.EndDate = end
			}

			if err := app.Items.SetRecurrence(ctx, itemID, cfg); err != nil {
				return err
			}
			if cfg.Enabled() {
				fmt.Printf("Item %s now recurs %s\n", itemID[:8], recurType)
			} else {
				fmt.Printf("Recurrence removed from item %s\n", itemID[:8])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recurType, "type", "none", "Recurrence type (none|daily|weekly|biweekly|monthly)")
	cmd.Flags().StringVar(&days, "days", "", "Weekdays for weekly/biweekly (e.g. mon,wed,fri)")
	cmd.Flags().StringVar(&at, "at", "", "Time of day (HH:MM)")
	cmd.Flags().StringVar(&until, "until", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newItemStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ITEM STATUS",
		Short: "Move an item through the workflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.MarkStatus(ctx, itemID, domain.ItemStatus(args[1])); err != nil {
				return err
			}
			fmt.Printf("Item %s is now %s\n", itemID[:8], args[1])
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITEM",
		Short: "Remove a planning item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(ctx, itemID); err != nil {
				return err
			}
			fmt.Printf("Removed item %s\n", itemID[:8])
			return nil
		},
	}
}
