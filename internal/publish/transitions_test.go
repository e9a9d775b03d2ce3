package publish

import (
	"testing"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.ItemStatus
		to   domain.ItemStatus
		want bool
	}{
		{"workflow forward", domain.ItemIdea, domain.ItemDraft, true},
		{"workflow backward", domain.ItemApproved, domain.ItemIdea, true},
		{"workflow to scheduled", domain.ItemDraft, domain.ItemScheduled, true},
		{"workflow skips to publishing", domain.ItemDraft, domain.ItemPublishing, false},
		{"scheduled to publishing", domain.ItemScheduled, domain.ItemPublishing, true},
		{"scheduled back to workflow", domain.ItemScheduled, domain.ItemDraft, true},
		{"scheduled to failed", domain.ItemScheduled, domain.ItemFailed, true},
		{"publishing to published", domain.ItemPublishing, domain.ItemPublished, true},
		{"publishing to failed", domain.ItemPublishing, domain.ItemFailed, true},
		{"publishing back to workflow", domain.ItemPublishing, domain.ItemDraft, false},
		{"failed retries", domain.ItemFailed, domain.ItemPublishing, true},
		{"failed reschedules", domain.ItemFailed, domain.ItemScheduled, true},
		{"failed back to workflow", domain.ItemFailed, domain.ItemReview, true},
		{"published is terminal", domain.ItemPublished, domain.ItemDraft, false},
		{"published stays published", domain.ItemPublished, domain.ItemPublished, true},
		{"same status", domain.ItemIdea, domain.ItemIdea, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}
