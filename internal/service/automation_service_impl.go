package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
)

type automationService struct {
	items    repository.ItemRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewAutomationService(items repository.ItemRepo, uow db.UnitOfWork, observer UseCaseObserver) AutomationService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &automationService{items: items, uow: uow, observer: observer}
}

// ExpandDue walks every recurrence template and, for each whose next
// occurrence falls at or before now, creates one child item. The template's
// LastGeneratedAt high-water mark keeps repeated runs from duplicating the
// same occurrence. Each template expands in its own transaction so one bad
// template does not block the rest.
func (s *automationService) ExpandDue(ctx context.Context, now time.Time) (created []*domain.PlanningItem, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "automation_expand", start, err, map[string]any{"created": len(created)})
	}()

	templates, err := s.items.ListRecurrenceTemplates(ctx)
	if err != nil {
		return nil, err
	}

	for _, tmpl := range templates {
		child, expandErr := s.expandOne(ctx, tmpl, now)
		if expandErr != nil {
			return created, expandErr
		}
		if child != nil {
			created = append(created, child)
		}
	}
	return created, nil
}

func (s *automationService) expandOne(ctx context.Context, tmpl *domain.PlanningItem, now time.Time) (*domain.PlanningItem, error) {
	if !tmpl.Recurrence.Enabled() {
		return nil, nil
	}

	// Resume from the last generated occurrence, or from the template's
	// creation for a fresh template.
	after := tmpl.CreatedAt
	if tmpl.LastGeneratedAt != nil {
		after = *tmpl.LastGeneratedAt
	}

	next := tmpl.Recurrence.NextOccurrence(after)
	if next == nil || next.After(now) {
		return nil, nil
	}

	child := s.childOf(tmpl, *next)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)

		n, err := txItems.CountInColumn(ctx, child.ColumnID)
		if err != nil {
			return err
		}
		child.Position = n
		if err := txItems.Create(ctx, child); err != nil {
			return err
		}

		tmpl.LastGeneratedAt = next
		tmpl.UpdatedAt = time.Now().UTC()
		return txItems.Update(ctx, tmpl)
	})
	if err != nil {
		return nil, err
	}
	return child, nil
}

// childOf copies the template's content fields into a fresh draft scheduled
// at the occurrence. Recurrence config stays on the template only.
func (s *automationService) childOf(tmpl *domain.PlanningItem, at time.Time) *domain.PlanningItem {
	now := time.Now().UTC()
	scheduled := at
	return &domain.PlanningItem{
		ID:                 uuid.New().String(),
		Title:              tmpl.Title,
		Content:            tmpl.Content,
		ContentType:        tmpl.ContentType,
		Platform:           tmpl.Platform,
		Status:             domain.ItemDraft,
		Priority:           tmpl.Priority,
		ClientID:           tmpl.ClientID,
		ColumnID:           tmpl.ColumnID,
		AssignedTo:         tmpl.AssignedTo,
		ScheduledAt:        &scheduled,
		MediaURLs:          append([]string(nil), tmpl.MediaURLs...),
		Metadata:           tmpl.Metadata,
		RecurrenceParentID: tmpl.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
