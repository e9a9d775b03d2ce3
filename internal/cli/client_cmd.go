package cli

import (
	"context"
	"fmt"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage brand profiles",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientUpdateCmd(app),
		newClientArchiveCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var name, handle, description, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a brand profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Client{
				Name:        name,
				Handle:      handle,
				Description: description,
				BrandColor:  color,
			}
			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Created client %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&handle, "handle", "", "Primary social handle")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&color, "color", "", "Brand color (hex)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List brand profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatClientList(clients))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived clients")

	return cmd
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var name, handle, description, color string

	cmd := &cobra.Command{
		Use:   "update CLIENT",
		Short: "Update a brand profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, clientID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("handle") {
				c.Handle = handle
			}
			if cmd.Flags().Changed("description") {
				c.Description = description
			}
			if cmd.Flags().Changed("color") {
				c.BrandColor = color
			}

			if err := app.Clients.Update(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Updated client %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&handle, "handle", "", "Primary social handle")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&color, "color", "", "Brand color (hex)")

	return cmd
}

func newClientArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive CLIENT",
		Short: "Archive a brand profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Archive(ctx, clientID); err != nil {
				return err
			}
			fmt.Printf("Archived client %s\n", clientID)
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CLIENT",
		Short: "Remove an archived brand profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, clientID); err != nil {
				return err
			}
			fmt.Printf("Removed client %s\n", clientID)
			return nil
		},
	}
}
