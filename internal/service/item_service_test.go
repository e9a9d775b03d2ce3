package service

import (
	"context"
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
	"github.com/pautahq/pauta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CreateDefaults(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")

	item := &domain.PlanningItem{Title: "First tweet", ContentType: domain.ContentTweet, ColumnID: col.ID}
	require.NoError(t, svc.Create(ctx, item))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.PlatformTwitter, item.Platform, "platform derives from content type")
	assert.Equal(t, domain.ItemIdea, item.Status)
	assert.Equal(t, domain.PriorityMedium, item.Priority)
	assert.Equal(t, 0, item.Position)

	second := &domain.PlanningItem{Title: "Second", ContentType: domain.ContentTweet, ColumnID: col.ID}
	require.NoError(t, svc.Create(ctx, second))
	assert.Equal(t, 1, second.Position, "new items append at the column end")
}

func TestItemService_CreateValidation(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")

	err := svc.Create(ctx, &domain.PlanningItem{ContentType: domain.ContentTweet, ColumnID: col.ID})
	assert.ErrorContains(t, err, "title is required")

	err = svc.Create(ctx, &domain.PlanningItem{Title: "x", ContentType: "podcast", ColumnID: col.ID})
	assert.ErrorContains(t, err, "unknown content type")

	err = svc.Create(ctx, &domain.PlanningItem{Title: "x", ContentType: domain.ContentTweet})
	assert.ErrorContains(t, err, "column is required")
}

func TestItemService_CreateThreadFlattens(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")

	item := &domain.PlanningItem{
		Title:       "Launch thread",
		ContentType: domain.ContentThread,
		ColumnID:    col.ID,
		Metadata: domain.Metadata{ThreadTweets: []domain.ThreadSegment{
			{Text: "one"}, {Text: "two"},
		}},
	}
	require.NoError(t, svc.Create(ctx, item))
	assert.Equal(t, "one"+domain.ThreadSeparator+"two", item.Content)

	long := make([]rune, domain.MaxSegmentRunes+1)
	for i := range long {
		long[i] = 'a'
	}
	bad := &domain.PlanningItem{
		Title:       "Too long",
		ContentType: domain.ContentThread,
		ColumnID:    col.ID,
		Metadata:    domain.Metadata{ThreadTweets: []domain.ThreadSegment{{Text: string(long)}}},
	}
	assert.Error(t, svc.Create(ctx, bad))
}

func TestItemService_ListHonorsClientScope(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")
	acme := env.seedClient(t, "Acme")
	other := env.seedClient(t, "Other")
	env.seedItem(t, col.ID, "acme post", testutil.WithClientID(acme.ID))
	env.seedItem(t, col.ID, "other post", testutil.WithClientID(other.ID))

	scoped := NewItemService(env.items, env.columns, env.uow, WithClientScope([]string{acme.ID}))
	items, err := scoped.List(ctx, repository.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "acme post", items[0].Title)

	// Asking for a client outside the scope silently narrows to the scope.
	items, err = scoped.List(ctx, repository.ItemFilter{ClientID: other.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "acme post", items[0].Title)

	unrestricted := NewItemService(env.items, env.columns, env.uow)
	items, err = unrestricted.List(ctx, repository.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestItemService_MoveToColumn(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow)
	ctx := context.Background()
	src := env.seedColumn(t, "Ideas")
	dst := env.seedColumn(t, "Drafting")
	env.seedItem(t, dst.ID, "already there", testutil.WithItemPosition(0))
	item := env.seedItem(t, src.ID, "moving")

	require.NoError(t, svc.MoveToColumn(ctx, item.ID, dst.ID))

	got, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, dst.ID, got.ColumnID)
	assert.Equal(t, 1, got.Position, "appends after the destination's existing items")

	// Moving to the current column changes nothing.
	require.NoError(t, svc.MoveToColumn(ctx, item.ID, dst.ID))
	again, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Position)

	assert.Error(t, svc.MoveToColumn(ctx, item.ID, "no-such-column"))
}

func TestItemService_RescheduleDay(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow, WithLocation(time.UTC))
	ctx := context.Background()
	col := env.seedColumn(t, "Scheduled")

	at := time.Date(2026, 9, 3, 15, 30, 0, 0, time.UTC)
	item := env.seedItem(t, col.ID, "planned", testutil.WithScheduledAt(at))

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	changed, err := svc.RescheduleDay(ctx, item.ID, day)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ScheduledAt)
	assert.Equal(t, 10, got.ScheduledAt.Day())
	assert.Equal(t, 15, got.ScheduledAt.In(time.UTC).Hour(), "time of day survives the move")

	changed, err = svc.RescheduleDay(ctx, item.ID, day)
	require.NoError(t, err)
	assert.False(t, changed, "dropping on the same day is a no-op")
}

func TestItemService_SetThread(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow)
	ctx := context.Background()
	col := env.seedColumn(t, "Drafting")

	thread := env.seedItem(t, col.ID, "thread", testutil.WithContentType(domain.ContentThread))
	segments := []domain.ThreadSegment{{Text: "hook"}, {Text: "payoff"}}
	require.NoError(t, svc.SetThread(ctx, thread.ID, segments))

	got, err := env.items.GetByID(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "hook"+domain.ThreadSeparator+"payoff", got.Content)
	assert.Len(t, got.Metadata.ThreadTweets, 2)

	tweet := env.seedItem(t, col.ID, "plain tweet")
	err = svc.SetThread(ctx, tweet.ID, segments)
	assert.ErrorContains(t, err, "not a thread")
}

func TestItemService_SetRecurrence(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")
	item := env.seedItem(t, col.ID, "weekly digest")

	cfg := domain.RecurrenceConfig{
		Type: domain.RecurrenceWeekly,
		Days: []time.Weekday{time.Monday},
		Time: "09:00",
	}
	require.NoError(t, svc.SetRecurrence(ctx, item.ID, cfg))

	got, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRecurrenceTemplate)
	assert.Equal(t, domain.RecurrenceWeekly, got.Recurrence.Type)

	// Disabling recurrence clears the template flag.
	require.NoError(t, svc.SetRecurrence(ctx, item.ID, domain.RecurrenceConfig{Type: domain.RecurrenceNone}))
	got, err = env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRecurrenceTemplate)

	err = svc.SetRecurrence(ctx, item.ID, domain.RecurrenceConfig{Type: domain.RecurrenceDaily, Time: "25:99"})
	assert.Error(t, err)
}

func TestItemService_MarkStatus(t *testing.T) {
	env := setupEnv(t)
	svc := NewItemService(env.items, env.columns, env.uow)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")
	item := env.seedItem(t, col.ID, "moving along")

	require.NoError(t, svc.MarkStatus(ctx, item.ID, domain.ItemDraft))
	require.NoError(t, svc.MarkStatus(ctx, item.ID, domain.ItemReview))

	err := svc.MarkStatus(ctx, item.ID, domain.ItemPublishing)
	assert.ErrorContains(t, err, "cannot move item")

	err = svc.MarkStatus(ctx, item.ID, "bogus")
	assert.ErrorContains(t, err, "unknown status")

	got, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemReview, got.Status, "rejected transitions leave the item untouched")
}
