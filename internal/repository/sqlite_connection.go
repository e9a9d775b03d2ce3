package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/domain"
)

// connectionColumns is the canonical SELECT column list for social_connections.
const connectionColumns = `id, client_id, platform, account_name, access_token, refresh_token, active, expires_at, created_at, updated_at`

// SQLiteConnectionRepo implements ConnectionRepo using a SQLite database.
type SQLiteConnectionRepo struct {
	db db.DBTX
}

// NewSQLiteConnectionRepo creates a new SQLiteConnectionRepo.
func NewSQLiteConnectionRepo(conn db.DBTX) *SQLiteConnectionRepo {
	return &SQLiteConnectionRepo{db: conn}
}

func (r *SQLiteConnectionRepo) Create(ctx context.Context, conn *domain.SocialConnection) error {
	query := `INSERT INTO social_connections (` + connectionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		conn.ID,
		conn.ClientID,
		string(conn.Platform),
		conn.AccountName,
		conn.AccessToken,
		conn.RefreshToken,
		boolToInt(conn.Active),
		nullableTimeToString(conn.ExpiresAt, time.RFC3339),
		conn.CreatedAt.Format(time.RFC3339),
		conn.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting social connection: %w", err)
	}
	return nil
}

func (r *SQLiteConnectionRepo) GetByID(ctx context.Context, id string) (*domain.SocialConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM social_connections WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	conn, err := scanConnectionFields(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("social connection: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning social connection: %w", err)
	}
	return conn, nil
}

func (r *SQLiteConnectionRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.SocialConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM social_connections WHERE client_id = ? ORDER BY platform`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing social connections: %w", err)
	}
	defer rows.Close()

	var conns []*domain.SocialConnection
	for rows.Next() {
		conn, err := scanConnectionFields(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning social connection row: %w", err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating social connections: %w", err)
	}
	return conns, nil
}

func (r *SQLiteConnectionRepo) Update(ctx context.Context, conn *domain.SocialConnection) error {
	query := `UPDATE social_connections SET client_id = ?, platform = ?, account_name = ?,
		access_token = ?, refresh_token = ?, active = ?, expires_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		conn.ClientID,
		string(conn.Platform),
		conn.AccountName,
		conn.AccessToken,
		conn.RefreshToken,
		boolToInt(conn.Active),
		nullableTimeToString(conn.ExpiresAt, time.RFC3339),
		conn.UpdatedAt.Format(time.RFC3339),
		conn.ID,
	)
	if err != nil {
		return fmt.Errorf("updating social connection: %w", err)
	}
	return nil
}

func (r *SQLiteConnectionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM social_connections WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting social connection: %w", err)
	}
	return nil
}

func scanConnectionFields(sc rowScanner) (*domain.SocialConnection, error) {
	var conn domain.SocialConnection
	var platformStr string
	var activeInt int
	var expiresAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := sc.Scan(
		&conn.ID, &conn.ClientID, &platformStr, &conn.AccountName,
		&conn.AccessToken, &conn.RefreshToken,
		&activeInt, &expiresAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	conn.Platform = domain.Platform(platformStr)
	conn.Active = intToBool(activeInt)
	conn.ExpiresAt = parseNullableTime(expiresAtStr, time.RFC3339)

	var parseErr error
	conn.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	conn.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &conn, nil
}
