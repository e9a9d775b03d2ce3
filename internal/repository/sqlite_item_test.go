package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupItemRepo(t *testing.T) (*SQLiteItemRepo, *domain.KanbanColumn) {
	t.Helper()
	database := testutil.NewTestDB(t)
	col := testutil.NewTestColumn("Ideas")
	require.NoError(t, NewSQLiteColumnRepo(database).Create(context.Background(), col))
	return NewSQLiteItemRepo(database), col
}

func TestItemRepo_CreateWithoutRecurrence(t *testing.T) {
	repo, col := setupItemRepo(t)
	ctx := context.Background()

	// An item that never went through normalization carries a zero-value
	// recurrence config; it must still satisfy the schema.
	item := &domain.PlanningItem{
		ID:          "raw-item-1",
		Title:       "Unscheduled note",
		ContentType: domain.ContentTweet,
		Status:      domain.ItemIdea,
		Priority:    domain.PriorityMedium,
		ColumnID:    col.ID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RecurrenceNone, got.Recurrence.Type)
	assert.False(t, got.Recurrence.Enabled())
}

func TestItemRepo_CreateAndGet(t *testing.T) {
	repo, col := setupItemRepo(t)
	ctx := context.Background()

	scheduled := time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC)
	due := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	item := testutil.NewTestItem(col.ID, "Launch teaser",
		testutil.WithContentType(domain.ContentThread),
		testutil.WithThreadTweets(
			domain.ThreadSegment{Text: "part one"},
			domain.ThreadSegment{Text: "part two", MediaURLs: []string{"https://cdn.example/a.png"}},
		),
		testutil.WithScheduledAt(scheduled),
		testutil.WithDueDate(due),
		testutil.WithMediaURLs("https://cdn.example/cover.png"),
		testutil.WithRecurrence(domain.RecurrenceConfig{
			Type: domain.RecurrenceWeekly,
			Days: []time.Weekday{time.Monday, time.Friday},
			Time: "10:00",
		}),
	)
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch teaser", got.Title)
	assert.Equal(t, domain.ContentThread, got.ContentType)
	assert.Equal(t, domain.PlatformTwitter, got.Platform)
	require.NotNil(t, got.ScheduledAt)
	assert.True(t, got.ScheduledAt.Equal(scheduled))
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-09-12", got.DueDate.Format("2006-01-02"))
	assert.Equal(t, []string{"https://cdn.example/cover.png"}, got.MediaURLs)
	require.Len(t, got.Metadata.ThreadTweets, 2)
	assert.Equal(t, "part two", got.Metadata.ThreadTweets[1].Text)
	assert.Equal(t, []string{"https://cdn.example/a.png"}, got.Metadata.ThreadTweets[1].MediaURLs)
	assert.Equal(t, domain.RecurrenceWeekly, got.Recurrence.Type)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, got.Recurrence.Days)
	assert.Equal(t, "10:00", got.Recurrence.Time)
	assert.True(t, got.IsRecurrenceTemplate)
}

func TestItemRepo_GetMissing(t *testing.T) {
	repo, _ := setupItemRepo(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemRepo_ListFilters(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	clients := NewSQLiteClientRepo(database)
	columns := NewSQLiteColumnRepo(database)
	repo := NewSQLiteItemRepo(database)

	acme := testutil.NewTestClient("Acme")
	require.NoError(t, clients.Create(ctx, acme))
	col := testutil.NewTestColumn("Drafting")
	require.NoError(t, columns.Create(ctx, col))

	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "Acme tweet",
		testutil.WithClientID(acme.ID),
		testutil.WithStatus(domain.ItemDraft),
		testutil.WithContent("big sale coming"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "Reel idea",
		testutil.WithContentType(domain.ContentReel),
		testutil.WithPriority(domain.PriorityHigh))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "Plain note")))

	tests := []struct {
		name   string
		filter ItemFilter
		want   []string
	}{
		{"no constraint", ItemFilter{}, []string{"Acme tweet", "Reel idea", "Plain note"}},
		{"by client", ItemFilter{ClientID: acme.ID}, []string{"Acme tweet"}},
		{"by platform", ItemFilter{Platform: domain.PlatformInstagram}, []string{"Reel idea"}},
		{"by status", ItemFilter{Status: domain.ItemDraft}, []string{"Acme tweet"}},
		{"by priority", ItemFilter{Priority: domain.PriorityHigh}, []string{"Reel idea"}},
		{"search matches title", ItemFilter{Search: "reel"}, []string{"Reel idea"}},
		{"search matches content", ItemFilter{Search: "sale"}, []string{"Acme tweet"}},
		{"search misses", ItemFilter{Search: "nonexistent"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := repo.List(ctx, tc.filter)
			require.NoError(t, err)
			var titles []string
			for _, it := range items {
				titles = append(titles, it.Title)
			}
			assert.ElementsMatch(t, tc.want, titles)
		})
	}
}

func TestItemRepo_ListByColumnOrder(t *testing.T) {
	repo, col := setupItemRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "third", testutil.WithItemPosition(2))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "first", testutil.WithItemPosition(0))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "second", testutil.WithItemPosition(1))))

	items, err := repo.ListByColumn(ctx, col.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "third", items[2].Title)

	n, err := repo.CountInColumn(ctx, col.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.CountInColumn(ctx, "empty-column")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestItemRepo_ListScheduledDue(t *testing.T) {
	repo, col := setupItemRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "due now",
		testutil.WithStatus(domain.ItemScheduled),
		testutil.WithScheduledAt(now.Add(-time.Minute)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "due later",
		testutil.WithStatus(domain.ItemScheduled),
		testutil.WithScheduledAt(now.Add(time.Hour)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "already published",
		testutil.WithStatus(domain.ItemPublished),
		testutil.WithScheduledAt(now.Add(-time.Hour)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "no timestamp",
		testutil.WithStatus(domain.ItemScheduled))))

	due, err := repo.ListScheduledDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "due now", due[0].Title)
}

func TestItemRepo_ListRecurrenceTemplates(t *testing.T) {
	repo, col := setupItemRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "weekly digest",
		testutil.WithRecurrence(domain.RecurrenceConfig{Type: domain.RecurrenceWeekly, Days: []time.Weekday{time.Monday}, Time: "09:00"}))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(col.ID, "one-off")))

	templates, err := repo.ListRecurrenceTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "weekly digest", templates[0].Title)
}

func TestItemRepo_UpdateAndDelete(t *testing.T) {
	repo, col := setupItemRepo(t)
	ctx := context.Background()

	item := testutil.NewTestItem(col.ID, "draft")
	require.NoError(t, repo.Create(ctx, item))

	item.Title = "polished"
	item.Status = domain.ItemReview
	item.RetryCount = 2
	item.ErrorMessage = "rate limited"
	item.ExternalPostID = "ext-42"
	item.ScheduleConfirmed = true
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "polished", got.Title)
	assert.Equal(t, domain.ItemReview, got.Status)
	assert.Equal(t, 2, got.RetryCount)
	assert.Equal(t, "rate limited", got.ErrorMessage)
	assert.Equal(t, "ext-42", got.ExternalPostID)
	assert.True(t, got.ScheduleConfirmed)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, repo.Delete(ctx, item.ID), "delete is idempotent")
}
