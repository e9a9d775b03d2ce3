package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publish"
)

// StatusPill returns a colored status indicator for a planning item.
func StatusPill(status domain.ItemStatus) string {
	switch status {
	case domain.ItemIdea:
		return StyleDim.Render("○ Idea")
	case domain.ItemDraft:
		return StyleBlue.Render("◔ Draft")
	case domain.ItemReview:
		return StyleYellow.Render("◑ Review")
	case domain.ItemApproved:
		return StyleAqua.Render("◕ Approved")
	case domain.ItemScheduled:
		return StylePurple.Render("◷ Scheduled")
	case domain.ItemPublishing:
		return StyleYellow.Render("◌ Publishing")
	case domain.ItemPublished:
		return StyleGreen.Render("✔ Published")
	case domain.ItemFailed:
		return StyleRed.Render("✖ Failed")
	default:
		return StyleDim.Render(string(status))
	}
}

// PriorityPill returns a colored priority indicator.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed.Render("▲ Urgent")
	case domain.PriorityHigh:
		return StyleYellow.Render("△ High")
	case domain.PriorityMedium:
		return StyleFg.Render("– Medium")
	case domain.PriorityLow:
		return StyleDim.Render("▽ Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// PlatformBadge returns a colored platform label, or a dimmed dash when the
// content type maps to no platform.
func PlatformBadge(p domain.Platform) string {
	switch p {
	case domain.PlatformTwitter:
		return StyleBlue.Render("twitter")
	case domain.PlatformInstagram:
		return StylePurple.Render("instagram")
	case domain.PlatformLinkedIn:
		return StyleAqua.Render("linkedin")
	case domain.PlatformYouTube:
		return StyleRed.Render("youtube")
	default:
		return StyleDim.Render("--")
	}
}

// ModePill returns the publication mode indicator.
func ModePill(mode domain.PublishMode) string {
	if mode == domain.ModeAuto {
		return StyleGreen.Render("⚡ auto")
	}
	return StyleDim.Render("✎ manual")
}

// PublishBadge renders an item's publication badge with the matching color.
func PublishBadge(b publish.Badge) string {
	var style lipgloss.Style
	switch b.Kind {
	case publish.BadgeFailed:
		style = StyleRed
	case publish.BadgePublishing:
		style = StyleYellow
	case publish.BadgePublished:
		style = StyleGreen
	case publish.BadgeScheduled:
		style = StylePurple
	case publish.BadgeMode:
		if b.Label == string(domain.ModeAuto) {
			style = StyleGreen
		} else {
			style = StyleDim
		}
	default:
		style = StyleDim
	}
	label := b.Label
	if b.Spinner {
		label = "◌ " + label
	}
	return style.Render(label)
}
