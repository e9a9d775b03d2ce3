package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pautahq/pauta/internal/board"
	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publish"
	"github.com/pautahq/pauta/internal/repository"
)

type itemService struct {
	items    repository.ItemRepo
	columns  repository.ColumnRepo
	uow      db.UnitOfWork
	observer UseCaseObserver

	// clientScope restricts list queries to these client IDs. Empty means
	// unrestricted. Filters are narrowed at query time, so a scope change
	// takes effect on the next list.
	clientScope []string

	loc *time.Location
}

// ItemServiceOption configures the item service.
type ItemServiceOption func(*itemService)

// WithClientScope restricts every list query to the given client IDs.
func WithClientScope(ids []string) ItemServiceOption {
	return func(s *itemService) { s.clientScope = ids }
}

// WithObserver attaches use-case telemetry.
func WithObserver(obs UseCaseObserver) ItemServiceOption {
	return func(s *itemService) { s.observer = obs }
}

// WithLocation sets the timezone used for calendar day arithmetic.
func WithLocation(loc *time.Location) ItemServiceOption {
	return func(s *itemService) { s.loc = loc }
}

func NewItemService(items repository.ItemRepo, columns repository.ColumnRepo, uow db.UnitOfWork, opts ...ItemServiceOption) ItemService {
	s := &itemService{
		items:   items,
		columns: columns,
		uow:     uow,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// normalize applies the field derivations shared by Create and Update:
// platform lookup, thread flattening, and recurrence cleanup.
func (s *itemService) normalize(item *domain.PlanningItem) error {
	if item.Title == "" {
		return fmt.Errorf("item title is required")
	}
	if !domain.ValidContentTypes[string(item.ContentType)] {
		return fmt.Errorf("unknown content type %q", item.ContentType)
	}

	if p, ok := domain.PlatformFor(item.ContentType); ok {
		item.Platform = p
	} else {
		item.Platform = ""
	}

	if item.IsThread() && len(item.Metadata.ThreadTweets) > 0 {
		if err := domain.ValidateThread(item.Metadata.ThreadTweets); err != nil {
			return err
		}
		item.Content = domain.FlattenThread(item.Metadata.ThreadTweets)
	}

	item.Recurrence = item.Recurrence.Normalize()
	if !item.Recurrence.Enabled() {
		item.IsRecurrenceTemplate = false
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, item *domain.PlanningItem) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "item_create", start, err, map[string]any{"content_type": item.ContentType})
	}()

	if err = s.normalize(item); err != nil {
		return err
	}
	if item.ColumnID == "" {
		return fmt.Errorf("item column is required")
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = domain.ItemIdea
	}
	if item.Priority == "" {
		item.Priority = domain.PriorityMedium
	}

	// New items append at the end of their column.
	n, err := s.items.CountInColumn(ctx, item.ColumnID)
	if err != nil {
		return err
	}
	item.Position = n

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.items.Create(ctx, item)
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.PlanningItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context, filter repository.ItemFilter) ([]*domain.PlanningItem, error) {
	return s.items.List(ctx, filter.Narrowed(s.clientScope))
}

func (s *itemService) ListByColumn(ctx context.Context, columnID string) ([]*domain.PlanningItem, error) {
	return s.items.ListByColumn(ctx, columnID)
}

func (s *itemService) Update(ctx context.Context, item *domain.PlanningItem) error {
	if err := s.normalize(item); err != nil {
		return err
	}
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// MoveToColumn performs the atomic column reassignment for a board drop:
// one transaction updating column_id and appending at the destination's
// current end.
func (s *itemService) MoveToColumn(ctx context.Context, id, columnID string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "item_move", start, err, map[string]any{"column_id": columnID})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		txColumns := repository.NewSQLiteColumnRepo(tx)

		item, err := txItems.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := txColumns.GetByID(ctx, columnID); err != nil {
			return err
		}

		n, err := txItems.CountInColumn(ctx, columnID)
		if err != nil {
			return err
		}
		move, ok := board.CrossColumnMove(item, columnID, n)
		if !ok {
			return nil
		}

		item.ColumnID = move.ColumnID
		item.Position = move.Position
		item.UpdatedAt = time.Now().UTC()
		return txItems.Update(ctx, item)
	})
}

func (s *itemService) RescheduleDay(ctx context.Context, id string, day time.Time) (bool, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	scheduledAt, dueDate, changed := board.Reschedule(item, day, s.loc)
	if !changed {
		return false, nil
	}

	item.ScheduledAt = scheduledAt
	item.DueDate = dueDate
	item.UpdatedAt = time.Now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

func (s *itemService) SetThread(ctx context.Context, id string, segments []domain.ThreadSegment) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !item.IsThread() {
		return fmt.Errorf("item %q is not a thread", item.Title)
	}
	if err := domain.ValidateThread(segments); err != nil {
		return err
	}

	item.Metadata.ThreadTweets = segments
	item.Content = domain.FlattenThread(segments)
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *itemService) SetRecurrence(ctx context.Context, id string, cfg domain.RecurrenceConfig) error {
	if err := cfg.Validate(time.Now()); err != nil {
		return err
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}

	item.Recurrence = cfg.Normalize()
	item.IsRecurrenceTemplate = item.Recurrence.Enabled()
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *itemService) MarkStatus(ctx context.Context, id string, status domain.ItemStatus) error {
	if !domain.ValidItemStatuses[string(status)] {
		return fmt.Errorf("unknown status %q", status)
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !publish.CanTransition(item.Status, status) {
		return fmt.Errorf("cannot move item from %s to %s", item.Status, status)
	}

	item.Status = status
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}
