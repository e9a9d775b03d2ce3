package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/spf13/cobra"
)

func newColumnCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
	}

	cmd.AddCommand(
		newColumnAddCmd(app),
		newColumnListCmd(app),
		newColumnUpdateCmd(app),
		newColumnReorderCmd(app),
		newColumnRemoveCmd(app),
	)

	return cmd
}

func newColumnAddCmd(app *App) *cobra.Command {
	var title, colType, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a board column",
		RunE: func(cmd *cobra.Command, args []string) error {
			col := &domain.KanbanColumn{
				Title: title,
				Type:  domain.ColumnType(colType),
				Color: color,
			}
			if err := app.Columns.Create(context.Background(), col); err != nil {
				return err
			}
			fmt.Printf("Added column %s at position %d\n", col.Title, col.Position)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Column title")
	cmd.Flags().StringVar(&colType, "type", "custom", "Column type (idea|draft|review|approved|scheduled|published|custom)")
	cmd.Flags().StringVar(&color, "color", "", "Column color (hex)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newColumnListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List board columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, err := app.Columns.List(context.Background())
			if err != nil {
				return err
			}
			if len(columns) == 0 {
				fmt.Println("No columns yet. Run `pauta board` to seed the default board.")
				return nil
			}

			rows := make([][]string, 0, len(columns))
			for _, col := range columns {
				rows = append(rows, []string{
					fmt.Sprintf("%d", col.Position),
					formatter.TruncID(col.ID),
					formatter.Bold(col.Title),
					formatter.Dim(string(col.Type)),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"#", "ID", "Title", "Type"}, rows))
			return nil
		},
	}
}

func newColumnUpdateCmd(app *App) *cobra.Command {
	var title, colType, color string

	cmd := &cobra.Command{
		Use:   "update COLUMN",
		Short: "Update a board column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			columnID, err := resolveColumnID(ctx, app, args[0])
			if err != nil {
				return err
			}
			col, err := app.Columns.GetByID(ctx, columnID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				col.Title = title
			}
			if cmd.Flags().Changed("type") {
				col.Type = domain.ColumnType(colType)
			}
			if cmd.Flags().Changed("color") {
				col.Color = color
			}

			if err := app.Columns.Update(ctx, col); err != nil {
				return err
			}
			fmt.Printf("Updated column %s\n", col.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Column title")
	cmd.Flags().StringVar(&colType, "type", "", "Column type")
	cmd.Flags().StringVar(&color, "color", "", "Column color (hex)")

	return cmd
}

func newColumnReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder COLUMN [COLUMN...]",
		Short: "Reorder board columns left to right",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := resolveColumnID(ctx, app, arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if err := app.Columns.Reorder(ctx, ids); err != nil {
				return err
			}
			fmt.Printf("Reordered %d columns: %s\n", len(ids), strings.Join(args, ", "))
			return nil
		},
	}
}

func newColumnRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove COLUMN",
		Short: "Remove a board column and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			columnID, err := resolveColumnID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Columns.Delete(ctx, columnID); err != nil {
				return err
			}
			fmt.Printf("Removed column %s\n", columnID)
			return nil
		},
	}
}
