package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/domain"
)

// itemColumns is the canonical SELECT column list for planning_items.
const itemColumns = `id, title, content, content_type, platform, status, priority,
		client_id, column_id, position, assigned_to, due_date, scheduled_at, media_urls,
		recurrence_type, recurrence_days, recurrence_time, recurrence_end_date,
		is_recurrence_template, metadata, retry_count, error_message, external_post_id,
		schedule_confirmed, recurrence_parent_id, last_generated_at, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, item *domain.PlanningItem) error {
	mediaJSON, err := marshalJSON(item.MediaURLs, "[]")
	if err != nil {
		return fmt.Errorf("encoding media urls: %w", err)
	}
	metaJSON, err := marshalJSON(item.Metadata, "{}")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	query := `INSERT INTO planning_items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.Content,
		string(item.ContentType),
		string(item.Platform),
		string(item.Status),
		string(item.Priority),
		nullableString(item.ClientID),
		item.ColumnID,
		item.Position,
		item.AssignedTo,
		nullableTimeToString(item.DueDate, dateLayout),
		nullableTimeToString(item.ScheduledAt, time.RFC3339),
		mediaJSON,
		recurrenceTypeOrNone(item.Recurrence.Type),
		domain.WeekdayTokens(item.Recurrence.Days),
		item.Recurrence.Time,
		nullableTimeToString(item.Recurrence.EndDate, dateLayout),
		boolToInt(item.IsRecurrenceTemplate),
		metaJSON,
		item.RetryCount,
		item.ErrorMessage,
		item.ExternalPostID,
		boolToInt(item.ScheduleConfirmed),
		item.RecurrenceParentID,
		nullableTimeToString(item.LastGeneratedAt, time.RFC3339),
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting planning item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.PlanningItem, error) {
	query := `SELECT ` + itemColumns + ` FROM planning_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	item, err := scanItemFields(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("planning item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning planning item: %w", err)
	}
	return item, nil
}

// List returns items matching the filter, most recently updated first.
// This ordering is what the flat list view renders unsegmented.
func (r *SQLiteItemRepo) List(ctx context.Context, filter ItemFilter) ([]*domain.PlanningItem, error) {
	query := `SELECT ` + itemColumns + ` FROM planning_items`
	var conds []string
	var args []any

	if filter.ClientID != "" {
		conds = append(conds, "client_id = ?")
		args = append(args, filter.ClientID)
	}
	if filter.Platform != "" {
		conds = append(conds, "platform = ?")
		args = append(args, string(filter.Platform))
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, string(filter.Priority))
	}
	if filter.Search != "" {
		conds = append(conds, "(title LIKE ? OR content LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY updated_at DESC, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing planning items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) ListByColumn(ctx context.Context, columnID string) ([]*domain.PlanningItem, error) {
	query := `SELECT ` + itemColumns + ` FROM planning_items WHERE column_id = ? ORDER BY position, created_at`
	rows, err := r.db.QueryContext(ctx, query, columnID)
	if err != nil {
		return nil, fmt.Errorf("listing items by column: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) CountInColumn(ctx context.Context, columnID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM planning_items WHERE column_id = ?`, columnID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting items in column: %w", err)
	}
	return n, nil
}

// ListScheduledDue returns auto-schedulable items whose publication time has
// arrived. Timestamps are stored as UTC RFC3339, so lexical comparison is
// chronological.
func (r *SQLiteItemRepo) ListScheduledDue(ctx context.Context, now time.Time) ([]*domain.PlanningItem, error) {
	query := `SELECT ` + itemColumns + ` FROM planning_items
		WHERE status = 'scheduled' AND scheduled_at IS NOT NULL AND scheduled_at <= ?
		ORDER BY scheduled_at`
	rows, err := r.db.QueryContext(ctx, query, now.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing due scheduled items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) ListRecurrenceTemplates(ctx context.Context) ([]*domain.PlanningItem, error) {
	query := `SELECT ` + itemColumns + ` FROM planning_items
		WHERE is_recurrence_template = 1 AND recurrence_type != 'none'
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recurrence templates: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.PlanningItem) error {
	mediaJSON, err := marshalJSON(item.MediaURLs, "[]")
	if err != nil {
		return fmt.Errorf("encoding media urls: %w", err)
	}
	metaJSON, err := marshalJSON(item.Metadata, "{}")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	query := `UPDATE planning_items SET title = ?, content = ?, content_type = ?, platform = ?,
		status = ?, priority = ?, client_id = ?, column_id = ?, position = ?, assigned_to = ?,
		due_date = ?, scheduled_at = ?, media_urls = ?,
		recurrence_type = ?, recurrence_days = ?, recurrence_time = ?, recurrence_end_date = ?,
		is_recurrence_template = ?, metadata = ?, retry_count = ?, error_message = ?,
		external_post_id = ?, schedule_confirmed = ?, recurrence_parent_id = ?,
		last_generated_at = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		item.Title,
		item.Content,
		string(item.ContentType),
		string(item.Platform),
		string(item.Status),
		string(item.Priority),
		nullableString(item.ClientID),
		item.ColumnID,
		item.Position,
		item.AssignedTo,
		nullableTimeToString(item.DueDate, dateLayout),
		nullableTimeToString(item.ScheduledAt, time.RFC3339),
		mediaJSON,
		recurrenceTypeOrNone(item.Recurrence.Type),
		domain.WeekdayTokens(item.Recurrence.Days),
		item.Recurrence.Time,
		nullableTimeToString(item.Recurrence.EndDate, dateLayout),
		boolToInt(item.IsRecurrenceTemplate),
		metaJSON,
		item.RetryCount,
		item.ErrorMessage,
		item.ExternalPostID,
		boolToInt(item.ScheduleConfirmed),
		item.RecurrenceParentID,
		nullableTimeToString(item.LastGeneratedAt, time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating planning item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM planning_items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting planning item: %w", err)
	}
	return nil
}

// nullableString maps an empty string to SQL NULL; planning_items.client_id
// uses NULL so ON DELETE SET NULL works.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func scanItems(rows *sql.Rows) ([]*domain.PlanningItem, error) {
	var items []*domain.PlanningItem
	for rows.Next() {
		item, err := scanItemFields(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning planning item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planning items: %w", err)
	}
	return items, nil
}

func scanItemFields(sc rowScanner) (*domain.PlanningItem, error) {
	var item domain.PlanningItem
	var contentTypeStr, platformStr, statusStr, priorityStr string
	var clientIDStr, dueDateStr, scheduledAtStr sql.NullString
	var mediaJSON, metaJSON string
	var recTypeStr, recDaysStr, recTimeStr string
	var recEndDateStr, lastGeneratedStr sql.NullString
	var isTemplateInt, confirmedInt int
	var createdAtStr, updatedAtStr string

	err := sc.Scan(
		&item.ID, &item.Title, &item.Content, &contentTypeStr, &platformStr,
		&statusStr, &priorityStr, &clientIDStr, &item.ColumnID, &item.Position,
		&item.AssignedTo, &dueDateStr, &scheduledAtStr, &mediaJSON,
		&recTypeStr, &recDaysStr, &recTimeStr, &recEndDateStr,
		&isTemplateInt, &metaJSON, &item.RetryCount, &item.ErrorMessage,
		&item.ExternalPostID, &confirmedInt, &item.RecurrenceParentID,
		&lastGeneratedStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	item.ContentType = domain.ContentType(contentTypeStr)
	item.Platform = domain.Platform(platformStr)
	item.Status = domain.ItemStatus(statusStr)
	item.Priority = domain.Priority(priorityStr)
	if clientIDStr.Valid {
		item.ClientID = clientIDStr.String
	}
	item.DueDate = parseNullableTime(dueDateStr, dateLayout)
	item.ScheduledAt = parseNullableTime(scheduledAtStr, time.RFC3339)
	item.IsRecurrenceTemplate = intToBool(isTemplateInt)
	item.ScheduleConfirmed = intToBool(confirmedInt)
	item.LastGeneratedAt = parseNullableTime(lastGeneratedStr, time.RFC3339)

	if err := unmarshalJSON(mediaJSON, &item.MediaURLs); err != nil {
		return nil, fmt.Errorf("media urls: %w", err)
	}
	if err := unmarshalJSON(metaJSON, &item.Metadata); err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}

	days, err := domain.ParseWeekdays(recDaysStr)
	if err != nil {
		return nil, fmt.Errorf("recurrence days: %w", err)
	}
	item.Recurrence = domain.RecurrenceConfig{
		Type:    domain.RecurrenceType(recTypeStr),
		Days:    days,
		Time:    recTimeStr,
		EndDate: parseNullableTime(recEndDateStr, dateLayout),
	}

	var parseErr error
	item.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	item.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &item, nil
}
