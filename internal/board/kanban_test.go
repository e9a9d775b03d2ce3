package board

import (
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_OrdersByPositionThenCreatedAt(t *testing.T) {
	col := testutil.NewTestColumn("Drafting")
	a := testutil.NewTestItem(col.ID, "a", testutil.WithItemPosition(1))
	b := testutil.NewTestItem(col.ID, "b", testutil.WithItemPosition(0))
	c := testutil.NewTestItem(col.ID, "c", testutil.WithItemPosition(1))
	c.CreatedAt = a.CreatedAt.Add(-time.Hour)

	out := Partition([]*domain.KanbanColumn{col}, []*domain.PlanningItem{a, b, c})
	require.Len(t, out, 1)
	require.Len(t, out[0].Items, 3)
	assert.Equal(t, "b", out[0].Items[0].Title)
	assert.Equal(t, "c", out[0].Items[1].Title, "ties break by creation time")
	assert.Equal(t, "a", out[0].Items[2].Title)
}

func TestPartition_DropsOrphanedItems(t *testing.T) {
	col := testutil.NewTestColumn("Ideas")
	item := testutil.NewTestItem(col.ID, "on board")
	orphan := testutil.NewTestItem("gone-column", "orphan")

	out := Partition([]*domain.KanbanColumn{col}, []*domain.PlanningItem{item, orphan})
	require.Len(t, out, 1)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, "on board", out[0].Items[0].Title)
}

func TestCrossColumnMove_AppendsAtEnd(t *testing.T) {
	item := testutil.NewTestItem("col-a", "moving")

	move, ok := CrossColumnMove(item, "col-b", 4)
	require.True(t, ok)
	assert.Equal(t, "col-b", move.ColumnID)
	assert.Equal(t, 4, move.Position)
}

func TestCrossColumnMove_SameColumnNoop(t *testing.T) {
	item := testutil.NewTestItem("col-a", "staying")

	_, ok := CrossColumnMove(item, "col-a", 9)
	assert.False(t, ok)
}

func TestReindex(t *testing.T) {
	col := testutil.NewTestColumn("Ideas")
	a := testutil.NewTestItem(col.ID, "a", testutil.WithItemPosition(0))
	b := testutil.NewTestItem(col.ID, "b", testutil.WithItemPosition(5))
	c := testutil.NewTestItem(col.ID, "c", testutil.WithItemPosition(2))

	changed := Reindex([]*domain.PlanningItem{a, b, c})
	require.Len(t, changed, 1)
	assert.Equal(t, "b", changed[0].Title)
	assert.Equal(t, 1, b.Position)
	assert.Equal(t, 2, c.Position)
}
