package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestClient("Acme",
		testutil.WithHandle("@acme"),
		testutil.WithBrandColor("#fb4934"))
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "@acme", got.Handle)
	assert.Equal(t, "#fb4934", got.BrandColor)
	assert.Nil(t, got.ArchivedAt)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientRepo_ListExcludesArchived(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	active := testutil.NewTestClient("Active Co")
	old := testutil.NewTestClient("Old Co")
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Archive(ctx, old.ID))

	got, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Active Co", got[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	archived, err := repo.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived())
}

func TestClientRepo_Update(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestClient("Acme")
	require.NoError(t, repo.Create(ctx, c))

	c.Name = "Acme Labs"
	c.Description = "research arm"
	c.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Labs", got.Name)
	assert.Equal(t, "research arm", got.Description)
}

func TestClientRepo_DeleteDetachesItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	clients := NewSQLiteClientRepo(database)
	columns := NewSQLiteColumnRepo(database)
	items := NewSQLiteItemRepo(database)

	c := testutil.NewTestClient("Acme")
	require.NoError(t, clients.Create(ctx, c))
	col := testutil.NewTestColumn("Ideas")
	require.NoError(t, columns.Create(ctx, col))
	item := testutil.NewTestItem(col.ID, "owned", testutil.WithClientID(c.ID))
	require.NoError(t, items.Create(ctx, item))

	require.NoError(t, clients.Delete(ctx, c.ID))

	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ClientID, "item survives with the client reference cleared")
}
