package repository

import (
	"context"
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// ItemFilter is the normalized query descriptor for planning item lists.
// Zero-valued fields mean "no constraint"; Search matches title and content.
type ItemFilter struct {
	ClientID string
	Platform domain.Platform
	Status   domain.ItemStatus
	Priority domain.Priority
	Search   string
}

// Narrowed intersects the filter with a caller's permitted client set.
// An empty permitted set means the caller is unrestricted. A restricted
// caller requesting no client, or a client outside the set, is substituted
// with the first permitted client rather than rejected.
func (f ItemFilter) Narrowed(permitted []string) ItemFilter {
	if len(permitted) == 0 {
		return f
	}
	for _, id := range permitted {
		if f.ClientID == id {
			return f
		}
	}
	f.ClientID = permitted[0]
	return f
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ColumnRepo interface {
	Create(ctx context.Context, col *domain.KanbanColumn) error
	GetByID(ctx context.Context, id string) (*domain.KanbanColumn, error)
	List(ctx context.Context) ([]*domain.KanbanColumn, error)
	Update(ctx context.Context, col *domain.KanbanColumn) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ItemRepo interface {
	Create(ctx context.Context, item *domain.PlanningItem) error
	GetByID(ctx context.Context, id string) (*domain.PlanningItem, error)
	List(ctx context.Context, filter ItemFilter) ([]*domain.PlanningItem, error)
	ListByColumn(ctx context.Context, columnID string) ([]*domain.PlanningItem, error)
	CountInColumn(ctx context.Context, columnID string) (int, error)
	ListScheduledDue(ctx context.Context, now time.Time) ([]*domain.PlanningItem, error)
	ListRecurrenceTemplates(ctx context.Context) ([]*domain.PlanningItem, error)
	Update(ctx context.Context, item *domain.PlanningItem) error
	Delete(ctx context.Context, id string) error
}

type ConnectionRepo interface {
	Create(ctx context.Context, conn *domain.SocialConnection) error
	GetByID(ctx context.Context, id string) (*domain.SocialConnection, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.SocialConnection, error)
	Update(ctx context.Context, conn *domain.SocialConnection) error
	Delete(ctx context.Context, id string) error
}
