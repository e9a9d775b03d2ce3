// Package publish holds the pure publication logic: mode resolution, the
// status machine, and badge derivation. Nothing here touches storage or the
// network; the service layer feeds it and acts on its answers.
package publish

import (
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// ResolveMode decides how an item for the given platform publishes under a
// client's connections: auto when a valid, non-expired, active connection for
// that platform exists, manual otherwise. A platform-less item is always
// manual.
//
// The decision is recomputed at each call; adding or removing a connection
// flips future resolutions without touching already saved items.
func ResolveMode(platform domain.Platform, conns []*domain.SocialConnection, now time.Time) domain.PublishMode {
	if platform == "" {
		return domain.ModeManual
	}
	for _, conn := range conns {
		if conn.Platform == platform && conn.ValidAt(now) {
			return domain.ModeAuto
		}
	}
	return domain.ModeManual
}
