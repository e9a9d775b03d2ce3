package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := LoadSettings(path)
	require.NoError(t, err, "missing file falls back to defaults")
	assert.Equal(t, "status", s.ColorBy)
	assert.True(t, s.TwentyFourHour)
	assert.Empty(t, s.HiddenColumns)
	assert.Empty(t, s.ClientFilter)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pauta", "settings.json")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	s.ToggleColumn("col-1")
	s.CycleColorBy()
	s.TwentyFourHour = false
	s.ClientFilter = "acme-id"
	require.NoError(t, s.Save(), "save creates the directory")

	reloaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.True(t, reloaded.ColumnHidden("col-1"))
	assert.Equal(t, "priority", reloaded.ColorBy)
	assert.False(t, reloaded.TwentyFourHour)
	assert.Equal(t, "acme-id", reloaded.ClientFilter)
}

func TestSettingsToggleColumn(t *testing.T) {
	s := &Settings{}
	s.ToggleColumn("a")
	s.ToggleColumn("b")
	assert.True(t, s.ColumnHidden("a"))
	assert.True(t, s.ColumnHidden("b"))

	s.ToggleColumn("a")
	assert.False(t, s.ColumnHidden("a"), "a second toggle unhides")
	assert.True(t, s.ColumnHidden("b"))
}

func TestSettingsCycleColorBy(t *testing.T) {
	s := &Settings{ColorBy: "status"}
	s.CycleColorBy()
	assert.Equal(t, "priority", s.ColorBy)
	s.CycleColorBy()
	assert.Equal(t, "status", s.ColorBy)
}

func TestSettingsClockLayout(t *testing.T) {
	s := &Settings{TwentyFourHour: true}
	assert.Equal(t, "15:04", s.ClockLayout())
	s.TwentyFourHour = false
	assert.Equal(t, "3:04PM", s.ClockLayout())
}

func TestLoadSettingsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadSettings(path)
	assert.ErrorContains(t, err, "parsing settings")
}
