package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publish"
	"github.com/pautahq/pauta/internal/publisher"
	"github.com/pautahq/pauta/internal/repository"
)

type publishService struct {
	items       repository.ItemRepo
	connections repository.ConnectionRepo
	pub         publisher.Client
	observer    UseCaseObserver
}

// PublishServiceOption configures the publish service.
type PublishServiceOption func(*publishService)

// WithPublishObserver attaches use-case telemetry.
func WithPublishObserver(obs UseCaseObserver) PublishServiceOption {
	return func(s *publishService) { s.observer = obs }
}

func NewPublishService(items repository.ItemRepo, connections repository.ConnectionRepo, pub publisher.Client, opts ...PublishServiceOption) PublishService {
	s := &publishService{items: items, connections: connections, pub: pub}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *publishService) Mode(ctx context.Context, item *domain.PlanningItem) (domain.PublishMode, error) {
	if item.ClientID == "" || item.Platform == "" {
		return domain.ModeManual, nil
	}
	conns, err := s.connections.ListByClient(ctx, item.ClientID)
	if err != nil {
		return "", err
	}
	return publish.ResolveMode(item.Platform, conns, time.Now()), nil
}

// Schedule moves the item to scheduled and saves it. When the item resolves
// to auto mode and carries both a time and content, the remote scheduler is
// offered the post; a declined or unreachable remote downgrades to local
// dispatch via RunDue, never to a failed save.
func (s *publishService) Schedule(ctx context.Context, item *domain.PlanningItem) (outcome *ScheduleOutcome, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "publish_schedule", start, err, map[string]any{"item_id": item.ID})
	}()

	if item.ID == "" {
		return nil, fmt.Errorf("item must be saved before scheduling")
	}
	if item.ScheduledAt == nil {
		return nil, fmt.Errorf("item has no scheduled time")
	}
	if !publish.CanTransition(item.Status, domain.ItemScheduled) {
		return nil, fmt.Errorf("cannot schedule item in status %s", item.Status)
	}

	mode, err := s.Mode(ctx, item)
	if err != nil {
		return nil, err
	}

	item.Status = domain.ItemScheduled
	item.ScheduleConfirmed = false
	outcome = &ScheduleOutcome{Mode: mode}

	if mode == domain.ModeAuto && item.HasContent() {
		resp, pubErr := s.pub.Publish(ctx, publisher.Request{
			Platform:     item.Platform,
			Content:      item.Content,
			MediaURLs:    item.MediaURLs,
			ScheduledFor: item.ScheduledAt,
		})
		switch {
		case pubErr == nil && resp.Confirmed:
			item.ScheduleConfirmed = true
			item.ExternalPostID = resp.PostID
			outcome.RemoteScheduled = true
		case pubErr == nil:
			outcome.Fallback = "remote scheduler declined the post"
		case errors.Is(pubErr, publisher.ErrDisabled):
			outcome.Fallback = "publisher not configured"
		default:
			outcome.Fallback = fmt.Sprintf("remote scheduling failed: %v", pubErr)
		}
	} else if mode == domain.ModeAuto {
		outcome.Fallback = "item has no content yet"
	}

	item.UpdatedAt = time.Now().UTC()
	if err = s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (s *publishService) PublishNow(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "publish_now", start, err, map[string]any{"item_id": id})
	}()

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !publish.CanTransition(item.Status, domain.ItemPublishing) {
		return fmt.Errorf("cannot publish item in status %s", item.Status)
	}
	return s.attempt(ctx, item)
}

func (s *publishService) Retry(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "publish_retry", start, err, map[string]any{"item_id": id})
	}()

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.Status != domain.ItemFailed {
		return fmt.Errorf("item is %s, only failed items can be retried", item.Status)
	}
	return s.attempt(ctx, item)
}

func (s *publishService) RunDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.items.ListScheduledDue(ctx, now)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, item := range due {
		if item.ScheduleConfirmed {
			// The remote scheduler owns this post; don't double-publish.
			continue
		}
		if err := s.attempt(ctx, item); err != nil && ctx.Err() != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

// attempt drives one publish cycle: publishing, then published or failed.
// Both terminal states are persisted, so the error return only signals
// infrastructure trouble, not a rejected post.
func (s *publishService) attempt(ctx context.Context, item *domain.PlanningItem) error {
	if item.Content == "" {
		return fmt.Errorf("item %q has no content to publish", item.Title)
	}
	mode, err := s.Mode(ctx, item)
	if err != nil {
		return err
	}
	if mode != domain.ModeAuto {
		return fmt.Errorf("item %q has no connected %s account", item.Title, item.Platform)
	}

	item.Status = domain.ItemPublishing
	item.UpdatedAt = time.Now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		return err
	}

	resp, pubErr := s.pub.Publish(ctx, publisher.Request{
		Platform:  item.Platform,
		Content:   item.Content,
		MediaURLs: item.MediaURLs,
	})
	if pubErr != nil {
		item.Status = domain.ItemFailed
		item.RetryCount++
		item.ErrorMessage = pubErr.Error()
		item.UpdatedAt = time.Now().UTC()
		if err := s.items.Update(ctx, item); err != nil {
			return err
		}
		return fmt.Errorf("publishing %q: %w", item.Title, pubErr)
	}

	item.Status = domain.ItemPublished
	item.ExternalPostID = resp.PostID
	item.ErrorMessage = ""
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}
