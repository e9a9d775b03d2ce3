package domain

import "time"

// PlanningItem is a unit of content to be produced and published. It belongs
// to exactly one kanban column and may additionally carry a calendar
// placement through ScheduledAt or DueDate.
type PlanningItem struct {
	ID          string
	Title       string
	Content     string
	ContentType ContentType
	Platform    Platform // derived from ContentType; empty when none applies
	Status      ItemStatus
	Priority    Priority

	ClientID   string // optional owning brand profile
	ColumnID   string
	Position   int
	AssignedTo string

	DueDate     *time.Time // date-only backlog placement
	ScheduledAt *time.Time // full timestamp; wins over DueDate on the calendar

	MediaURLs []string // order is user significant

	Recurrence           RecurrenceConfig
	IsRecurrenceTemplate bool
	RecurrenceParentID   string // set on items generated from a template
	LastGeneratedAt      *time.Time

	Metadata Metadata

	// Publication attempt bookkeeping.
	RetryCount        int
	ErrorMessage      string
	ExternalPostID    string
	ScheduleConfirmed bool // remote scheduler acknowledged the scheduled_at

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Metadata is the open bag for content-type specific shape. Thread items keep
// their structured segments here; Extra survives round trips untouched.
type Metadata struct {
	ThreadTweets []ThreadSegment   `json:"thread_tweets,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// IsThread reports whether the item uses the structured thread editor.
func (i *PlanningItem) IsThread() bool {
	return i.ContentType == ContentThread
}

// CalendarDate returns the day the item occupies on the calendar:
// ScheduledAt if present, else DueDate, else nil (no calendar placement).
func (i *PlanningItem) CalendarDate() *time.Time {
	if i.ScheduledAt != nil {
		return i.ScheduledAt
	}
	return i.DueDate
}

// HasContent reports whether the item carries non-empty publishable content.
func (i *PlanningItem) HasContent() bool {
	if i.IsThread() {
		for _, seg := range i.Metadata.ThreadTweets {
			if seg.Text != "" {
				return true
			}
		}
	}
	return i.Content != ""
}
