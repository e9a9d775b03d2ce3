package cli

import (
	"github.com/pautahq/pauta/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clients     service.ClientService
	Columns     service.ColumnService
	Items       service.ItemService
	Connections service.ConnectionService
	Publish     service.PublishService
	Automation  service.AutomationService
	Generation  service.GenerationService
	Feeds       service.FeedService

	// IsInteractive reports whether stdin is a terminal; the board TUI
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pauta" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pauta",
		Short: "Social media content planner and publisher",
	}

	root.AddCommand(
		newClientCmd(app),
		newColumnCmd(app),
		newItemCmd(app),
		newConnectCmd(app),
		newPublishCmd(app),
		newAutomationCmd(app),
		newDraftCmd(app),
		newFeedCmd(app),
		newBoardCmd(app),
		newCalendarCmd(app),
	)

	return root
}
