package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/domain"
)

// columnColumns is the canonical SELECT column list for kanban_columns.
const columnColumns = `id, title, column_type, position, color, created_at, updated_at`

// SQLiteColumnRepo implements ColumnRepo using a SQLite database.
type SQLiteColumnRepo struct {
	db db.DBTX
}

// NewSQLiteColumnRepo creates a new SQLiteColumnRepo.
func NewSQLiteColumnRepo(conn db.DBTX) *SQLiteColumnRepo {
	return &SQLiteColumnRepo{db: conn}
}

func (r *SQLiteColumnRepo) Create(ctx context.Context, col *domain.KanbanColumn) error {
	query := `INSERT INTO kanban_columns (id, title, column_type, position, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		col.ID,
		col.Title,
		string(col.Type),
		col.Position,
		col.Color,
		col.CreatedAt.Format(time.RFC3339),
		col.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting kanban column: %w", err)
	}
	return nil
}

func (r *SQLiteColumnRepo) GetByID(ctx context.Context, id string) (*domain.KanbanColumn, error) {
	query := `SELECT ` + columnColumns + ` FROM kanban_columns WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	col, err := scanColumnFields(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("kanban column: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning kanban column: %w", err)
	}
	return col, nil
}

func (r *SQLiteColumnRepo) List(ctx context.Context) ([]*domain.KanbanColumn, error) {
	query := `SELECT ` + columnColumns + ` FROM kanban_columns ORDER BY position, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing kanban columns: %w", err)
	}
	defer rows.Close()

	var cols []*domain.KanbanColumn
	for rows.Next() {
		col, err := scanColumnFields(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning kanban column row: %w", err)
		}
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating kanban columns: %w", err)
	}
	return cols, nil
}

func (r *SQLiteColumnRepo) Update(ctx context.Context, col *domain.KanbanColumn) error {
	query := `UPDATE kanban_columns SET title = ?, column_type = ?, position = ?, color = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		col.Title,
		string(col.Type),
		col.Position,
		col.Color,
		col.UpdatedAt.Format(time.RFC3339),
		col.ID,
	)
	if err != nil {
		return fmt.Errorf("updating kanban column: %w", err)
	}
	return nil
}

func (r *SQLiteColumnRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM kanban_columns WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting kanban column: %w", err)
	}
	return nil
}

func (r *SQLiteColumnRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kanban_columns`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting kanban columns: %w", err)
	}
	return n, nil
}

func scanColumnFields(sc rowScanner) (*domain.KanbanColumn, error) {
	var col domain.KanbanColumn
	var typeStr string
	var createdAtStr, updatedAtStr string

	err := sc.Scan(&col.ID, &col.Title, &typeStr, &col.Position, &col.Color, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	col.Type = domain.ColumnType(typeStr)
	var parseErr error
	col.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	col.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &col, nil
}
