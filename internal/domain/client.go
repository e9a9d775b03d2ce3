package domain

import "time"

// Client is a brand profile: the account content is planned and published for.
type Client struct {
	ID          string
	Name        string
	Handle      string
	Description string
	BrandColor  string
	ArchivedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsArchived reports whether the client has been archived.
func (c *Client) IsArchived() bool {
	return c.ArchivedAt != nil
}
