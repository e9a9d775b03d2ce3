package domain

import "time"

// SocialConnection is a connected platform account under a client, obtained
// through the external OAuth flow. Presence of a valid connection makes
// matching items publish automatically.
type SocialConnection struct {
	ID          string
	ClientID    string
	Platform    Platform
	AccountName string

	// Tokens from the OAuth exchange. AccessToken authorizes API calls;
	// RefreshToken renews it when the expiry passes.
	AccessToken  string
	RefreshToken string

	Active    bool
	ExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokenRenewal carries the result of a token refresh against the platform.
// Empty token fields mean the stored value is kept.
type TokenRenewal struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

// ValidAt reports whether the connection can be used for automatic
// publication at the given instant: active and not expired.
func (c *SocialConnection) ValidAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	return c.ExpiresAt == nil || c.ExpiresAt.After(now)
}
