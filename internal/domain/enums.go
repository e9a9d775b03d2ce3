package domain

type ItemStatus string

const (
	ItemIdea       ItemStatus = "idea"
	ItemDraft      ItemStatus = "draft"
	ItemReview     ItemStatus = "review"
	ItemApproved   ItemStatus = "approved"
	ItemScheduled  ItemStatus = "scheduled"
	ItemPublishing ItemStatus = "publishing"
	ItemPublished  ItemStatus = "published"
	ItemFailed     ItemStatus = "failed"
)

// ValidItemStatuses is the canonical set of accepted planning item statuses.
var ValidItemStatuses = map[string]bool{
	"idea": true, "draft": true, "review": true, "approved": true,
	"scheduled": true, "publishing": true, "published": true, "failed": true,
}

// WorkflowStatuses are the manually managed pre-publication stages. Items may
// move freely between them through direct edits; only the
// scheduled -> publishing -> published chain is machine driven.
var WorkflowStatuses = map[ItemStatus]bool{
	ItemIdea: true, ItemDraft: true, ItemReview: true, ItemApproved: true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "urgent": true,
}

type ContentType string

const (
	ContentTweet       ContentType = "tweet"
	ContentThread      ContentType = "thread"
	ContentPost        ContentType = "post"
	ContentReel        ContentType = "reel"
	ContentStory       ContentType = "story"
	ContentLinkedIn    ContentType = "linkedin_post"
	ContentVideoScript ContentType = "video_script"
	ContentBlogPost    ContentType = "blog_post"
)

var ValidContentTypes = map[string]bool{
	"tweet": true, "thread": true, "post": true, "reel": true,
	"story": true, "linkedin_post": true, "video_script": true,
	"blog_post": true,
}

type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
)

var ValidPlatforms = map[string]bool{
	"twitter": true, "instagram": true, "linkedin": true, "youtube": true,
}

type ColumnType string

const (
	ColumnIdea      ColumnType = "idea"
	ColumnDraft     ColumnType = "draft"
	ColumnReview    ColumnType = "review"
	ColumnApproved  ColumnType = "approved"
	ColumnScheduled ColumnType = "scheduled"
	ColumnPublished ColumnType = "published"
	ColumnCustom    ColumnType = "custom"
)

var ValidColumnTypes = map[string]bool{
	"idea": true, "draft": true, "review": true, "approved": true,
	"scheduled": true, "published": true, "custom": true,
}

type RecurrenceType string

const (
	RecurrenceNone     RecurrenceType = "none"
	RecurrenceDaily    RecurrenceType = "daily"
	RecurrenceWeekly   RecurrenceType = "weekly"
	RecurrenceBiweekly RecurrenceType = "biweekly"
	RecurrenceMonthly  RecurrenceType = "monthly"
)

var ValidRecurrenceTypes = map[string]bool{
	"none": true, "daily": true, "weekly": true, "biweekly": true,
	"monthly": true,
}

// PublishMode says how an item reaches its platform: automatically through a
// connected account, or manually by the user.
type PublishMode string

const (
	ModeAuto   PublishMode = "auto"
	ModeManual PublishMode = "manual"
)
