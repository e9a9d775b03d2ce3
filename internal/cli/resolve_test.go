package cli

import (
	"context"
	"testing"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveItemID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	columns, err := app.Columns.List(ctx)
	require.NoError(t, err)

	a := &domain.PlanningItem{Title: "first", ContentType: domain.ContentTweet, ColumnID: columns[0].ID}
	require.NoError(t, app.Items.Create(ctx, a))
	b := &domain.PlanningItem{Title: "second", ContentType: domain.ContentTweet, ColumnID: columns[0].ID}
	require.NoError(t, app.Items.Create(ctx, b))

	got, err := resolveItemID(ctx, app, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got, "exact UUID resolves")

	got, err = resolveItemID(ctx, app, a.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, a.ID, got, "unique prefix resolves")

	_, err = resolveItemID(ctx, app, "zzzzzzzz")
	assert.ErrorContains(t, err, "item not found")

	_, err = resolveItemID(ctx, app, "")
	assert.ErrorContains(t, err, "item ID is required")
}

func TestResolveClientID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	c := &domain.Client{Name: "Acme Studio"}
	require.NoError(t, app.Clients.Create(ctx, c))

	got, err := resolveClientID(ctx, app, "acme studio")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got, "name matches case-insensitively")

	got, err = resolveClientID(ctx, app, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got)

	_, err = resolveClientID(ctx, app, "nobody")
	assert.ErrorContains(t, err, "client not found")
}

func TestResolveColumnID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	columns, err := app.Columns.List(ctx)
	require.NoError(t, err)
	ideas := columns[0]

	got, err := resolveColumnID(ctx, app, "ideas")
	require.NoError(t, err)
	assert.Equal(t, ideas.ID, got, "title matches case-insensitively")

	got, err = resolveColumnID(ctx, app, ideas.ID)
	require.NoError(t, err)
	assert.Equal(t, ideas.ID, got)

	_, err = resolveColumnID(ctx, app, "Backlog")
	assert.ErrorContains(t, err, "column not found")
}
