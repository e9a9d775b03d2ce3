package domain

import "time"

// KanbanColumn is an ordered named bucket on the planning board. ColumnType
// drives icon and color lookup only; it carries no workflow semantics.
type KanbanColumn struct {
	ID       string
	Title    string
	Type     ColumnType
	Position int
	Color    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
