package cli

import (
	"context"
	"fmt"

	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/spf13/cobra"
)

func newConnectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Manage social account connections",
	}

	cmd.AddCommand(
		newConnectAddCmd(app),
		newConnectListCmd(app),
		newConnectRefreshCmd(app),
		newConnectRemoveCmd(app),
	)

	return cmd
}

func newConnectAddCmd(app *App) *cobra.Command {
	var clientRef, platform, account, expires string
	var accessToken, refreshToken string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a connected platform account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, clientRef)
			if err != nil {
				return err
			}

			conn := &domain.SocialConnection{
				ClientID:     clientID,
				Platform:     domain.Platform(platform),
				AccountName:  account,
				AccessToken:  accessToken,
				RefreshToken: refreshToken,
			}
			if expires != "" {
				t, err := parseDate(expires)
				if err != nil {
					return err
				}
				conn.ExpiresAt = t
			}

			if err := app.Connections.Connect(ctx, conn); err != nil {
				return err
			}
			fmt.Printf("Connected %s account %s\n", platform, account)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientRef, "client", "", "Owning client")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform (twitter|instagram|linkedin|youtube)")
	cmd.Flags().StringVar(&account, "account", "", "Account name or handle")
	cmd.Flags().StringVar(&expires, "expires", "", "Token expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&accessToken, "token", "", "Access token from the OAuth exchange")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "Refresh token from the OAuth exchange")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newConnectListCmd(app *App) *cobra.Command {
	var clientRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a client's connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, clientRef)
			if err != nil {
				return err
			}
			conns, err := app.Connections.List(ctx, clientID)
			if err != nil {
				return err
			}
			if len(conns) == 0 {
				fmt.Println("No connections. Items for this client publish manually.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatConnectionList(conns))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientRef, "client", "", "Client to list connections for")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func newConnectRefreshCmd(app *App) *cobra.Command {
	var expires, accessToken, refreshToken string

	cmd := &cobra.Command{
		Use:   "refresh CONNECTION",
		Short: "Mark a connection's token as renewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			renewed := domain.TokenRenewal{
				AccessToken:  accessToken,
				RefreshToken: refreshToken,
			}
			if expires != "" {
				t, err := parseDate(expires)
				if err != nil {
					return err
				}
				renewed.ExpiresAt = t
			}

			if err := app.Connections.Refresh(ctx, args[0], renewed); err != nil {
				return err
			}
			fmt.Printf("Refreshed connection %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&expires, "expires", "", "New expiry date (YYYY-MM-DD, empty for none)")
	cmd.Flags().StringVar(&accessToken, "token", "", "Renewed access token (empty keeps the stored one)")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "Renewed refresh token (empty keeps the stored one)")

	return cmd
}

func newConnectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CONNECTION",
		Short: "Disconnect a platform account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Connections.Disconnect(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Disconnected %s\n", args[0])
			return nil
		},
	}
}
