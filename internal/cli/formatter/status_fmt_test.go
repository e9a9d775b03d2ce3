package formatter

import (
	"testing"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publish"
	"github.com/stretchr/testify/assert"
)

func TestStatusPill(t *testing.T) {
	tests := []struct {
		status domain.ItemStatus
		want   string
	}{
		{domain.ItemIdea, "○ Idea"},
		{domain.ItemDraft, "◔ Draft"},
		{domain.ItemReview, "◑ Review"},
		{domain.ItemApproved, "◕ Approved"},
		{domain.ItemScheduled, "◷ Scheduled"},
		{domain.ItemPublishing, "◌ Publishing"},
		{domain.ItemPublished, "✔ Published"},
		{domain.ItemFailed, "✖ Failed"},
	}
	for _, tt := range tests {
		assert.Contains(t, StatusPill(tt.status), tt.want)
	}
}

func TestModePill(t *testing.T) {
	assert.Contains(t, ModePill(domain.ModeAuto), "auto")
	assert.Contains(t, ModePill(domain.ModeManual), "manual")
}

func TestPlatformBadge(t *testing.T) {
	assert.Contains(t, PlatformBadge(domain.PlatformTwitter), "twitter")
	assert.Contains(t, PlatformBadge(""), "--")
}

func TestPublishBadge(t *testing.T) {
	failed := PublishBadge(publish.Badge{Kind: publish.BadgeFailed, Label: "failed (1/3)", Retryable: true})
	assert.Contains(t, failed, "failed (1/3)")

	spinning := PublishBadge(publish.Badge{Kind: publish.BadgePublishing, Label: "publishing", Spinner: true})
	assert.Contains(t, spinning, "◌ publishing")

	scheduled := PublishBadge(publish.Badge{Kind: publish.BadgeScheduled, Label: "02 Jan 15:04"})
	assert.Contains(t, scheduled, "02 Jan 15:04")
}
