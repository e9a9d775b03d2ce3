package service

import (
	"context"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/feed"
	"github.com/pautahq/pauta/internal/repository"
)

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ColumnService interface {
	Create(ctx context.Context, col *domain.KanbanColumn) error
	GetByID(ctx context.Context, id string) (*domain.KanbanColumn, error)
	List(ctx context.Context) ([]*domain.KanbanColumn, error)
	Update(ctx context.Context, col *domain.KanbanColumn) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string) error
	// EnsureDefaults seeds the standard board columns on an empty board and
	// returns the full column list.
	EnsureDefaults(ctx context.Context) ([]*domain.KanbanColumn, error)
}

type ItemService interface {
	Create(ctx context.Context, item *domain.PlanningItem) error
	GetByID(ctx context.Context, id string) (*domain.PlanningItem, error)
	List(ctx context.Context, filter repository.ItemFilter) ([]*domain.PlanningItem, error)
	ListByColumn(ctx context.Context, columnID string) ([]*domain.PlanningItem, error)
	Update(ctx context.Context, item *domain.PlanningItem) error
	Delete(ctx context.Context, id string) error

	// MoveToColumn reassigns the item to another column, appending it at the
	// end. Moving to the current column is a no-op.
	MoveToColumn(ctx context.Context, id, columnID string) error

	// RescheduleDay moves the item's calendar placement to another day,
	// rewriting whichever date field it already uses. Returns false when the
	// drop was a no-op.
	RescheduleDay(ctx context.Context, id string, day time.Time) (bool, error)

	// SetThread replaces the item's thread segments, rebuilding the flat
	// content from them.
	SetThread(ctx context.Context, id string, segments []domain.ThreadSegment) error

	// SetRecurrence applies a normalized recurrence config to the item.
	SetRecurrence(ctx context.Context, id string, cfg domain.RecurrenceConfig) error

	// MarkStatus moves the item to the given status, enforcing the
	// transition rules.
	MarkStatus(ctx context.Context, id string, status domain.ItemStatus) error
}

type ConnectionService interface {
	Connect(ctx context.Context, conn *domain.SocialConnection) error
	List(ctx context.Context, clientID string) ([]*domain.SocialConnection, error)
	Disconnect(ctx context.Context, id string) error
	Refresh(ctx context.Context, id string, renewed domain.TokenRenewal) error
}

// ScheduleOutcome reports what happened when an item was saved through the
// scheduling contract.
type ScheduleOutcome struct {
	Mode domain.PublishMode
	// RemoteScheduled is true when the remote scheduler took the post.
	RemoteScheduled bool
	// Fallback carries the reason local cron-based scheduling will be used
	// instead; the save itself has still succeeded.
	Fallback string
}

type PublishService interface {
	// Mode resolves the item's publication mode from its client's
	// connections at this instant.
	Mode(ctx context.Context, item *domain.PlanningItem) (domain.PublishMode, error)

	// Schedule saves the item and, when it is an auto-mode scheduling
	// candidate with content, additionally offers it to the remote
	// scheduler. Remote failure never blocks the save.
	Schedule(ctx context.Context, item *domain.PlanningItem) (*ScheduleOutcome, error)

	// PublishNow publishes immediately. Requires auto mode and non-empty
	// content.
	PublishNow(ctx context.Context, id string) error

	// Retry re-invokes the publish attempt for a failed item. Idempotent
	// from the caller's perspective; retries are never capped locally.
	Retry(ctx context.Context, id string) error

	// RunDue drives the scheduled -> publishing -> published|failed chain
	// for every item whose time has arrived. Returns the number processed.
	RunDue(ctx context.Context, now time.Time) (int, error)
}

type AutomationService interface {
	// ExpandDue creates child items for every recurrence template whose next
	// occurrence has arrived, and returns them.
	ExpandDue(ctx context.Context, now time.Time) ([]*domain.PlanningItem, error)
}

type GenerationService interface {
	// DraftContent fills the item's content (and suggested media) from the
	// generation service, without saving.
	DraftContent(ctx context.Context, item *domain.PlanningItem, reference string) error

	// DraftImage generates one image URL for the item's content.
	DraftImage(ctx context.Context, item *domain.PlanningItem, style string) (string, error)
}

type FeedService interface {
	// Preview fetches a feed and maps its entries to planning item drafts.
	Preview(ctx context.Context, url string, limit int) ([]feed.Item, error)
}
