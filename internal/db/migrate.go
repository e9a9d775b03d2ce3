package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillColumnPositions(db); err != nil {
		return fmt.Errorf("backfilling column positions: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		handle      TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		brand_color TEXT NOT NULL DEFAULT '',
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS kanban_columns (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		column_type TEXT NOT NULL DEFAULT 'custom'
		            CHECK(column_type IN ('idea','draft','review','approved','scheduled','published','custom')),
		position    INTEGER NOT NULL DEFAULT 0,
		color       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS planning_items (
		id                     TEXT PRIMARY KEY,
		title                  TEXT NOT NULL,
		content                TEXT NOT NULL DEFAULT '',
		content_type           TEXT NOT NULL
		                       CHECK(content_type IN ('tweet','thread','post','reel','story','linkedin_post','video_script','blog_post')),
		platform               TEXT NOT NULL DEFAULT '',
		status                 TEXT NOT NULL DEFAULT 'idea'
		                       CHECK(status IN ('idea','draft','review','approved','scheduled','publishing','published','failed')),
		priority               TEXT NOT NULL DEFAULT 'medium'
		                       CHECK(priority IN ('low','medium','high','urgent')),
		client_id              TEXT REFERENCES clients(id) ON DELETE SET NULL,
		column_id              TEXT NOT NULL REFERENCES kanban_columns(id) ON DELETE CASCADE,
		position               INTEGER NOT NULL DEFAULT 0,
		assigned_to            TEXT NOT NULL DEFAULT '',
		due_date               TEXT,
		scheduled_at           TEXT,
		media_urls             TEXT NOT NULL DEFAULT '[]',
		recurrence_type        TEXT NOT NULL DEFAULT 'none'
		                       CHECK(recurrence_type IN ('none','daily','weekly','biweekly','monthly')),
		recurrence_days        TEXT NOT NULL DEFAULT '',
		recurrence_time        TEXT NOT NULL DEFAULT '',
		recurrence_end_date    TEXT,
		is_recurrence_template INTEGER NOT NULL DEFAULT 0,
		metadata               TEXT NOT NULL DEFAULT '{}',
		retry_count            INTEGER NOT NULL DEFAULT 0,
		error_message          TEXT NOT NULL DEFAULT '',
		external_post_id       TEXT NOT NULL DEFAULT '',
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS social_connections (
		id           TEXT PRIMARY KEY,
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		platform     TEXT NOT NULL
		             CHECK(platform IN ('twitter','instagram','linkedin','youtube')),
		account_name TEXT NOT NULL DEFAULT '',
		active       INTEGER NOT NULL DEFAULT 1,
		expires_at   TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_column ON planning_items(column_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_client ON planning_items(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_scheduled ON planning_items(scheduled_at)`,
	`CREATE INDEX IF NOT EXISTS idx_connections_client ON social_connections(client_id)`,

	// Added after the initial release: remote-scheduler confirmation flag,
	// recurrence template bookkeeping, and OAuth token storage.
	`ALTER TABLE planning_items ADD COLUMN schedule_confirmed INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE planning_items ADD COLUMN recurrence_parent_id TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE planning_items ADD COLUMN last_generated_at TEXT`,

	`ALTER TABLE social_connections ADD COLUMN access_token TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE social_connections ADD COLUMN refresh_token TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_items_recurrence_parent ON planning_items(recurrence_parent_id)
		WHERE recurrence_parent_id != ''`,
}

// migrateBackfillColumnPositions rewrites kanban column positions to a
// contiguous 0..n-1 run when duplicates exist. Databases written before
// reordering shipped could hold the default position 0 for every column.
func migrateBackfillColumnPositions(db *sql.DB) error {
	ctx := context.Background()

	var dupes int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) - COUNT(DISTINCT position) FROM kanban_columns`).Scan(&dupes)
	if err != nil {
		return fmt.Errorf("checking column positions: %w", err)
	}
	if dupes == 0 {
		return nil
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM kanban_columns ORDER BY position, created_at`)
	if err != nil {
		return fmt.Errorf("listing columns: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning column id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating columns: %w", err)
	}

	for i, id := range ids {
		if _, err := db.ExecContext(ctx, `UPDATE kanban_columns SET position = ? WHERE id = ?`, i, id); err != nil {
			return fmt.Errorf("updating column position: %w", err)
		}
	}
	return nil
}
