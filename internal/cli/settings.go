package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the durable board view preferences: hidden kanban columns,
// the dimension cards are colored by, the clock format, and the last client
// filter. The active board perspective is deliberately absent; it resets
// each session.
type Settings struct {
	HiddenColumns  []string `json:"hidden_columns,omitempty"`
	ColorBy        string   `json:"color_by"` // "status" or "priority"
	TwentyFourHour bool     `json:"twenty_four_hour"`
	ClientFilter   string   `json:"client_filter,omitempty"`

	path string
}

// LoadSettings reads settings from path, returning defaults when the file
// does not exist yet.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{ColorBy: "status", TwentyFourHour: true, path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if s.ColorBy == "" {
		s.ColorBy = "status"
	}
	return s, nil
}

// ColumnHidden reports whether a kanban column is hidden from the board.
func (s *Settings) ColumnHidden(id string) bool {
	for _, hidden := range s.HiddenColumns {
		if hidden == id {
			return true
		}
	}
	return false
}

// ToggleColumn flips a column's board visibility.
func (s *Settings) ToggleColumn(id string) {
	for i, hidden := range s.HiddenColumns {
		if hidden == id {
			s.HiddenColumns = append(s.HiddenColumns[:i], s.HiddenColumns[i+1:]...)
			return
		}
	}
	s.HiddenColumns = append(s.HiddenColumns, id)
}

// CycleColorBy advances the card color dimension.
func (s *Settings) CycleColorBy() {
	if s.ColorBy == "priority" {
		s.ColorBy = "status"
	} else {
		s.ColorBy = "priority"
	}
}

// ClockLayout returns the time layout for board timestamps.
func (s *Settings) ClockLayout() string {
	if s.TwentyFourHour {
		return "15:04"
	}
	return "3:04PM"
}

// Save writes the settings back to their file, creating the directory if
// needed.
func (s *Settings) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
