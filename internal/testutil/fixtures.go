package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/pautahq/pauta/internal/domain"
)

// Client options
type ClientOption func(*domain.Client)

func WithArchivedAt(t time.Time) ClientOption {
	return func(c *domain.Client) {
		c.ArchivedAt = &t
	}
}

func WithBrandColor(hex string) ClientOption {
	return func(c *domain.Client) {
		c.BrandColor = hex
	}
}

func WithHandle(handle string) ClientOption {
	return func(c *domain.Client) {
		c.Handle = handle
	}
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC()
	c := &domain.Client{
		ID:         uuid.New().String(),
		Name:       name,
		BrandColor: "#83a598",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KanbanColumn options
type ColumnOption func(*domain.KanbanColumn)

func WithColumnType(t domain.ColumnType) ColumnOption {
	return func(col *domain.KanbanColumn) {
		col.Type = t
	}
}

func WithPosition(p int) ColumnOption {
	return func(col *domain.KanbanColumn) {
		col.Position = p
	}
}

func NewTestColumn(title string, opts ...ColumnOption) *domain.KanbanColumn {
	now := time.Now().UTC()
	col := &domain.KanbanColumn{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.ColumnCustom,
		Position:  0,
		Color:     "#a89984",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(col)
	}
	return col
}

// PlanningItem options
type ItemOption func(*domain.PlanningItem)

func WithContentType(ct domain.ContentType) ItemOption {
	return func(i *domain.PlanningItem) {
		i.ContentType = ct
		if p, ok := domain.PlatformFor(ct); ok {
			i.Platform = p
		} else {
			i.Platform = ""
		}
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(i *domain.PlanningItem) {
		i.Status = s
	}
}

func WithPriority(p domain.Priority) ItemOption {
	return func(i *domain.PlanningItem) {
		i.Priority = p
	}
}

func WithClientID(id string) ItemOption {
	return func(i *domain.PlanningItem) {
		i.ClientID = id
	}
}

func WithContent(content string) ItemOption {
	return func(i *domain.PlanningItem) {
		i.Content = content
	}
}

func WithItemPosition(p int) ItemOption {
	return func(i *domain.PlanningItem) {
		i.Position = p
	}
}

func WithDueDate(d time.Time) ItemOption {
	return func(i *domain.PlanningItem) {
		i.DueDate = &d
	}
}

func WithScheduledAt(t time.Time) ItemOption {
	return func(i *domain.PlanningItem) {
		i.ScheduledAt = &t
	}
}

func WithMediaURLs(urls ...string) ItemOption {
	return func(i *domain.PlanningItem) {
		i.MediaURLs = urls
	}
}

func WithRecurrence(cfg domain.RecurrenceConfig) ItemOption {
	return func(i *domain.PlanningItem) {
		i.Recurrence = cfg
		i.IsRecurrenceTemplate = cfg.Enabled()
	}
}

func WithThreadTweets(segments ...domain.ThreadSegment) ItemOption {
	return func(i *domain.PlanningItem) {
		i.Metadata.ThreadTweets = segments
		i.Content = domain.FlattenThread(segments)
	}
}

func WithRetryCount(n int) ItemOption {
	return func(i *domain.PlanningItem) {
		i.RetryCount = n
	}
}

func NewTestItem(columnID, title string, opts ...ItemOption) *domain.PlanningItem {
	now := time.Now().UTC()
	i := &domain.PlanningItem{
		ID:          uuid.New().String(),
		Title:       title,
		ContentType: domain.ContentTweet,
		Platform:    domain.PlatformTwitter,
		Status:      domain.ItemIdea,
		Priority:    domain.PriorityMedium,
		ColumnID:    columnID,
		Position:    0,
		Recurrence:  domain.RecurrenceConfig{Type: domain.RecurrenceNone},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SocialConnection options
type ConnectionOption func(*domain.SocialConnection)

func WithInactive() ConnectionOption {
	return func(c *domain.SocialConnection) {
		c.Active = false
	}
}

func WithExpiresAt(t time.Time) ConnectionOption {
	return func(c *domain.SocialConnection) {
		c.ExpiresAt = &t
	}
}

func NewTestConnection(clientID string, platform domain.Platform, opts ...ConnectionOption) *domain.SocialConnection {
	now := time.Now().UTC()
	c := &domain.SocialConnection{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Platform:    platform,
		AccountName: "@pauta_test",
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
