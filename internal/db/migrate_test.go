package db_test

import (
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"clients", "kanban_columns", "planning_items", "social_connections"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	// Columns added by post-release ALTER TABLE migrations.
	for _, col := range []string{"schedule_confirmed", "recurrence_parent_id", "last_generated_at"} {
		var n int
		err := database.QueryRow(
			`SELECT COUNT(*) FROM pragma_table_info('planning_items') WHERE name = ?`, col).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "column %s should exist", col)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated; running again must tolerate existing tables
	// and duplicate ALTER TABLE columns.
	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_BackfillsColumnPositions(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Simulate a pre-reordering database where every column sat at position 0.
	now := time.Now().UTC().Format(time.RFC3339)
	for i, title := range []string{"Ideas", "Drafting", "Published"} {
		created := time.Now().UTC().Add(time.Duration(i) * time.Second).Format(time.RFC3339)
		_, err := database.Exec(
			`INSERT INTO kanban_columns (id, title, column_type, position, created_at, updated_at)
			 VALUES (?, ?, 'custom', 0, ?, ?)`, title, title, created, now)
		require.NoError(t, err)
	}

	require.NoError(t, db.Migrate(database))

	rows, err := database.Query(`SELECT title, position FROM kanban_columns ORDER BY position`)
	require.NoError(t, err)
	defer rows.Close()

	positions := map[string]int{}
	for rows.Next() {
		var title string
		var pos int
		require.NoError(t, rows.Scan(&title, &pos))
		positions[title] = pos
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, map[string]int{"Ideas": 0, "Drafting": 1, "Published": 2}, positions,
		"duplicate positions are rewritten to a contiguous run by creation order")
}
