package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// dateLayout is the storage format for date-only fields.
const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// recurrenceTypeOrNone maps a zero-value recurrence type to the stored
// default so an un-normalized item still satisfies the schema.
func recurrenceTypeOrNone(t domain.RecurrenceType) string {
	if t == "" {
		return string(domain.RecurrenceNone)
	}
	return string(t)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// marshalJSON encodes a value as a JSON string column, with a fallback
// default for nil values.
func marshalJSON(v any, fallback string) (string, error) {
	if v == nil {
		return fallback, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	return string(raw), nil
}

// unmarshalJSON decodes a JSON string column into dst, treating empty
// strings as absent.
func unmarshalJSON(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}
