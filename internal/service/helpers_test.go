package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publisher"
	"github.com/pautahq/pauta/internal/repository"
	"github.com/pautahq/pauta/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the repositories and unit of work every service test needs.
type testEnv struct {
	db          *sql.DB
	uow         db.UnitOfWork
	clients     *repository.SQLiteClientRepo
	columns     *repository.SQLiteColumnRepo
	items       *repository.SQLiteItemRepo
	connections *repository.SQLiteConnectionRepo
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:          database,
		uow:         testutil.NewTestUoW(database),
		clients:     repository.NewSQLiteClientRepo(database),
		columns:     repository.NewSQLiteColumnRepo(database),
		items:       repository.NewSQLiteItemRepo(database),
		connections: repository.NewSQLiteConnectionRepo(database),
	}
}

func (e *testEnv) seedColumn(t *testing.T, title string) *domain.KanbanColumn {
	t.Helper()
	col := testutil.NewTestColumn(title)
	require.NoError(t, e.columns.Create(context.Background(), col))
	return col
}

func (e *testEnv) seedClient(t *testing.T, name string) *domain.Client {
	t.Helper()
	c := testutil.NewTestClient(name)
	require.NoError(t, e.clients.Create(context.Background(), c))
	return c
}

func (e *testEnv) seedItem(t *testing.T, columnID, title string, opts ...testutil.ItemOption) *domain.PlanningItem {
	t.Helper()
	item := testutil.NewTestItem(columnID, title, opts...)
	require.NoError(t, e.items.Create(context.Background(), item))
	return item
}

func (e *testEnv) seedConnection(t *testing.T, clientID string, platform domain.Platform, opts ...testutil.ConnectionOption) *domain.SocialConnection {
	t.Helper()
	conn := testutil.NewTestConnection(clientID, platform, opts...)
	require.NoError(t, e.connections.Create(context.Background(), conn))
	return conn
}

// fakePublisher scripts the remote publisher's answers and records the
// requests it receives.
type fakePublisher struct {
	mu       sync.Mutex
	resp     *publisher.Response
	err      error
	requests []publisher.Request
}

func (f *fakePublisher) Publish(ctx context.Context, req publisher.Request) (*publisher.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakePublisher) Available(ctx context.Context) bool {
	return f.err == nil
}

func (f *fakePublisher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
