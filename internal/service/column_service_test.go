package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnService_EnsureDefaults(t *testing.T) {
	env := setupEnv(t)
	svc := NewColumnService(env.columns, env.uow)
	ctx := context.Background()

	cols, err := svc.EnsureDefaults(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 6)
	assert.Equal(t, "Ideas", cols[0].Title)
	assert.Equal(t, domain.ColumnIdea, cols[0].Type)
	assert.Equal(t, "Published", cols[5].Title)

	// A board that already has columns is left untouched.
	again, err := svc.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 6)
}

func TestColumnService_CreateAppends(t *testing.T) {
	env := setupEnv(t)
	svc := NewColumnService(env.columns, env.uow)
	ctx := context.Background()
	env.seedColumn(t, "Ideas")

	col := &domain.KanbanColumn{Title: "Evergreen"}
	require.NoError(t, svc.Create(ctx, col))
	assert.NotEmpty(t, col.ID)
	assert.Equal(t, domain.ColumnCustom, col.Type)
	assert.Equal(t, 1, col.Position)

	assert.ErrorContains(t, svc.Create(ctx, &domain.KanbanColumn{}), "title is required")
	assert.ErrorContains(t, svc.Create(ctx, &domain.KanbanColumn{Title: "x", Type: "swimlane"}), "unknown column type")
}

func TestColumnService_Reorder(t *testing.T) {
	env := setupEnv(t)
	svc := NewColumnService(env.columns, env.uow)
	ctx := context.Background()

	a := env.seedColumn(t, "A")
	b := env.seedColumn(t, "B")
	c := env.seedColumn(t, "C")
	for i, col := range []*domain.KanbanColumn{a, b, c} {
		col.Position = i
		require.NoError(t, env.columns.Update(ctx, col))
	}

	require.NoError(t, svc.Reorder(ctx, []string{c.ID, a.ID, b.ID}))

	cols, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, "C", cols[0].Title)
	assert.Equal(t, "A", cols[1].Title)
	assert.Equal(t, "B", cols[2].Title)
}

func TestColumnService_ReorderValidation(t *testing.T) {
	env := setupEnv(t)
	svc := NewColumnService(env.columns, env.uow)
	ctx := context.Background()
	a := env.seedColumn(t, "A")
	env.seedColumn(t, "B")

	err := svc.Reorder(ctx, []string{a.ID})
	assert.ErrorContains(t, err, "board has 2")

	err = svc.Reorder(ctx, []string{a.ID, "ghost"})
	assert.ErrorContains(t, err, "unknown column")

	err = svc.Reorder(ctx, []string{a.ID, a.ID})
	assert.ErrorContains(t, err, "unknown column", "a duplicated ID cannot stand in for the missing one")
}

func TestColumnService_ReorderRollsBack(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	a := testutil.NewTestColumn("A", testutil.WithPosition(0))
	b := testutil.NewTestColumn("B", testutil.WithPosition(1))
	require.NoError(t, env.columns.Create(ctx, a))
	require.NoError(t, env.columns.Create(ctx, b))

	// The second position rewrite fails, so the first must roll back.
	failing := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: errors.New("disk full")}
	svc := NewColumnService(env.columns, failing)

	err := svc.Reorder(ctx, []string{b.ID, a.ID})
	require.Error(t, err)

	cols, lerr := env.columns.List(ctx)
	require.NoError(t, lerr)
	assert.Equal(t, "A", cols[0].Title, "failed reorder leaves the board unchanged")
	assert.Equal(t, "B", cols[1].Title)
}
