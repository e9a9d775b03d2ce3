package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pautahq/pauta/internal/assist"
	"github.com/pautahq/pauta/internal/cli"
	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/feed"
	"github.com/pautahq/pauta/internal/publisher"
	"github.com/pautahq/pauta/internal/repository"
	"github.com/pautahq/pauta/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pauta/pauta.db
	dbPath := os.Getenv("PAUTA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pauta", "pauta.db")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	columnRepo := repository.NewSQLiteColumnRepo(database)
	itemRepo := repository.NewSQLiteItemRepo(database)
	connectionRepo := repository.NewSQLiteConnectionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Service telemetry goes to stderr only when asked for.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("PAUTA_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// PAUTA_CLIENT_SCOPE restricts item queries to a comma-separated set of
	// client IDs, for shared installations.
	var clientScope []string
	if scope := os.Getenv("PAUTA_CLIENT_SCOPE"); scope != "" {
		for _, id := range strings.Split(scope, ",") {
			if id = strings.TrimSpace(id); id != "" {
				clientScope = append(clientScope, id)
			}
		}
	}

	// Wire the remote publisher; a missing endpoint leaves it disabled and
	// everything falls back to manual publication.
	pubCfg := publisher.LoadConfig()
	var pubObserver publisher.Observer = publisher.NoopObserver{}
	if pubCfg.LogCalls {
		pubObserver = publisher.NewLogObserver(os.Stderr)
	}
	pubClient := publisher.NewHTTPClient(pubCfg, pubObserver)

	assistClient := assist.NewHTTPClient(assist.LoadConfig())

	app := &cli.App{
		Clients: service.NewClientService(clientRepo),
		Columns: service.NewColumnService(columnRepo, uow),
		Items: service.NewItemService(itemRepo, columnRepo, uow,
			service.WithClientScope(clientScope),
			service.WithObserver(observer),
		),
		Connections: service.NewConnectionService(connectionRepo, clientRepo),
		Publish: service.NewPublishService(itemRepo, connectionRepo, pubClient,
			service.WithPublishObserver(observer),
		),
		Automation: service.NewAutomationService(itemRepo, uow, observer),
		Generation: service.NewGenerationService(assistClient, observer),
		Feeds:      service.NewFeedService(feed.NewFetcher(15 * time.Second)),
	}

	// Detect interactive terminal for the board entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
