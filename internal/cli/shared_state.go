package cli

import (
	"context"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active client filter on the board; empty shows everything.
	ActiveClientID   string
	ActiveClientName string

	// Durable view preferences.
	Settings *Settings

	// Terminal dimensions
	Width  int
	Height int
}

// SetActiveClient resolves a client ID and sets the board's client filter.
func (s *SharedState) SetActiveClient(ctx context.Context, clientID string) {
	if clientID == "" {
		s.ActiveClientID = ""
		s.ActiveClientName = ""
		return
	}
	c, err := s.App.Clients.GetByID(ctx, clientID)
	if err != nil {
		return
	}
	s.ActiveClientID = c.ID
	s.ActiveClientName = c.Name
}

// ContentHeight returns the available height for view content,
// accounting for the header line, separator, and hint bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
