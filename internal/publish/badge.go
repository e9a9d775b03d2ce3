package publish

import (
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// RetryDisplayCap is the informational denominator shown on failed badges.
// It is display only; retries are never capped locally.
const RetryDisplayCap = 3

// BadgeKind selects the badge rendering family.
type BadgeKind string

const (
	BadgeFailed     BadgeKind = "failed"
	BadgePublishing BadgeKind = "publishing"
	BadgePublished  BadgeKind = "published"
	BadgeScheduled  BadgeKind = "scheduled"
	BadgeMode       BadgeKind = "mode"
)

// Badge is the rendering descriptor for an item's publication state.
type Badge struct {
	Kind      BadgeKind
	Label     string
	Retryable bool // failed only: clicking re-invokes the publish attempt
	Spinner   bool // publishing only: transient, no user action
	Confirmed bool // scheduled only: remote scheduler acknowledged
}

// ItemBadge derives the badge for an item given its resolved publication
// mode. Pre-scheduling stages show the mode only; the scheduled badge shows
// the formatted local publication time and distinguishes remote-confirmed
// from locally pending schedules.
func ItemBadge(item *domain.PlanningItem, mode domain.PublishMode, loc *time.Location) Badge {
	switch item.Status {
	case domain.ItemFailed:
		label := "failed"
		if item.RetryCount > 0 {
			label = fmt.Sprintf("failed (%d/%d)", item.RetryCount, RetryDisplayCap)
		}
		return Badge{Kind: BadgeFailed, Label: label, Retryable: true}

	case domain.ItemPublishing:
		return Badge{Kind: BadgePublishing, Label: "publishing", Spinner: true}

	case domain.ItemPublished:
		return Badge{Kind: BadgePublished, Label: "published"}

	case domain.ItemScheduled:
		if item.ScheduledAt != nil {
			return Badge{
				Kind:      BadgeScheduled,
				Label:     item.ScheduledAt.In(loc).Format("02 Jan 15:04"),
				Confirmed: item.ScheduleConfirmed,
			}
		}
	}
	return Badge{Kind: BadgeMode, Label: string(mode)}
}
