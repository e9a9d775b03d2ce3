package service

import (
	"context"
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomationService_ExpandDue(t *testing.T) {
	env := setupEnv(t)
	svc := NewAutomationService(env.items, env.uow, nil)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")
	acme := env.seedClient(t, "Acme")

	tmpl := env.seedItem(t, col.ID, "daily tip",
		testutil.WithClientID(acme.ID),
		testutil.WithContent("today's tip"),
		testutil.WithRecurrence(domain.RecurrenceConfig{Type: domain.RecurrenceDaily, Time: "09:00"}))

	// The template was created just now; its next occurrence is 09:00
	// tomorrow, so expansion two days out finds it due.
	now := time.Now().UTC().Add(48 * time.Hour)
	created, err := svc.ExpandDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, created, 1)

	child := created[0]
	assert.Equal(t, "daily tip", child.Title)
	assert.Equal(t, "today's tip", child.Content)
	assert.Equal(t, domain.ItemDraft, child.Status)
	assert.Equal(t, tmpl.ID, child.RecurrenceParentID)
	assert.False(t, child.IsRecurrenceTemplate, "children carry no recurrence of their own")
	require.NotNil(t, child.ScheduledAt)
	assert.Equal(t, "09:00", child.ScheduledAt.Format("15:04"))

	got, err := env.items.GetByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Position, "child appends after the template in its column")

	updated, err := env.items.GetByID(ctx, tmpl.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastGeneratedAt)
	assert.True(t, updated.LastGeneratedAt.Equal(*child.ScheduledAt))
}

func TestAutomationService_ExpandDueDedupes(t *testing.T) {
	env := setupEnv(t)
	svc := NewAutomationService(env.items, env.uow, nil)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")

	env.seedItem(t, col.ID, "weekly digest",
		testutil.WithRecurrence(domain.RecurrenceConfig{
			Type: domain.RecurrenceWeekly,
			Days: []time.Weekday{time.Monday},
			Time: "10:00",
		}))

	now := time.Now().UTC().Add(14 * 24 * time.Hour)
	first, err := svc.ExpandDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A second run at the same instant advances to the following Monday,
	// which is past now only when the first occurrence landed late in the
	// window; either way the same occurrence never repeats.
	second, err := svc.ExpandDue(ctx, now)
	require.NoError(t, err)
	for _, c := range second {
		assert.False(t, c.ScheduledAt.Equal(*first[0].ScheduledAt), "an occurrence expands once")
	}
}

func TestAutomationService_ExpandDueSkipsFuture(t *testing.T) {
	env := setupEnv(t)
	svc := NewAutomationService(env.items, env.uow, nil)
	ctx := context.Background()
	col := env.seedColumn(t, "Ideas")

	env.seedItem(t, col.ID, "not yet",
		testutil.WithRecurrence(domain.RecurrenceConfig{Type: domain.RecurrenceMonthly, Time: "09:00"}))

	created, err := svc.ExpandDue(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, created, "occurrences in the future are left alone")
}
