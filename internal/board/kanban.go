package board

import (
	"sort"

	"github.com/pautahq/pauta/internal/domain"
)

// ColumnItems pairs a kanban column with its items in board order.
type ColumnItems struct {
	Column *domain.KanbanColumn
	Items  []*domain.PlanningItem
}

// Partition groups items by column, preserving column order and sorting each
// column's items by position. Items referencing a column not in cols are
// dropped from the board (they remain reachable through the list view).
func Partition(cols []*domain.KanbanColumn, items []*domain.PlanningItem) []ColumnItems {
	byColumn := make(map[string][]*domain.PlanningItem, len(cols))
	for _, item := range items {
		byColumn[item.ColumnID] = append(byColumn[item.ColumnID], item)
	}

	out := make([]ColumnItems, 0, len(cols))
	for _, col := range cols {
		colItems := byColumn[col.ID]
		sort.SliceStable(colItems, func(i, j int) bool {
			if colItems[i].Position != colItems[j].Position {
				return colItems[i].Position < colItems[j].Position
			}
			return colItems[i].CreatedAt.Before(colItems[j].CreatedAt)
		})
		out = append(out, ColumnItems{Column: col, Items: colItems})
	}
	return out
}

// Move is the atomic (column, position) reassignment produced by a drop.
type Move struct {
	ColumnID string
	Position int
}

// CrossColumnMove computes the move for dropping an item into another column.
// Drops append to the end of the destination; destCount is the destination's
// item count at drop time. Dropping into the item's current column yields no
// move.
func CrossColumnMove(item *domain.PlanningItem, destColumnID string, destCount int) (Move, bool) {
	if item.ColumnID == destColumnID {
		return Move{}, false
	}
	return Move{ColumnID: destColumnID, Position: destCount}, true
}

// Reindex rewrites positions to a contiguous 0..n-1 run in the given order,
// returning the items whose position actually changed.
func Reindex(items []*domain.PlanningItem) []*domain.PlanningItem {
	var changed []*domain.PlanningItem
	for i, item := range items {
		if item.Position != i {
			item.Position = i
			changed = append(changed, item)
		}
	}
	return changed
}
