package publish

import (
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-time.Hour)

	conn := func(p domain.Platform, active bool, expires *time.Time) *domain.SocialConnection {
		return &domain.SocialConnection{Platform: p, Active: active, ExpiresAt: expires}
	}

	tests := []struct {
		name     string
		platform domain.Platform
		conns    []*domain.SocialConnection
		want     domain.PublishMode
	}{
		{"active connection", domain.PlatformTwitter,
			[]*domain.SocialConnection{conn(domain.PlatformTwitter, true, nil)}, domain.ModeAuto},
		{"unexpired connection", domain.PlatformTwitter,
			[]*domain.SocialConnection{conn(domain.PlatformTwitter, true, &future)}, domain.ModeAuto},
		{"expired connection", domain.PlatformTwitter,
			[]*domain.SocialConnection{conn(domain.PlatformTwitter, true, &past)}, domain.ModeManual},
		{"inactive connection", domain.PlatformTwitter,
			[]*domain.SocialConnection{conn(domain.PlatformTwitter, false, nil)}, domain.ModeManual},
		{"wrong platform", domain.PlatformTwitter,
			[]*domain.SocialConnection{conn(domain.PlatformInstagram, true, nil)}, domain.ModeManual},
		{"one valid among several", domain.PlatformInstagram,
			[]*domain.SocialConnection{
				conn(domain.PlatformTwitter, true, nil),
				conn(domain.PlatformInstagram, false, nil),
				conn(domain.PlatformInstagram, true, &future),
			}, domain.ModeAuto},
		{"no connections", domain.PlatformTwitter, nil, domain.ModeManual},
		{"platform-less item", "", []*domain.SocialConnection{conn(domain.PlatformTwitter, true, nil)}, domain.ModeManual},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveMode(tc.platform, tc.conns, now))
		})
	}
}
