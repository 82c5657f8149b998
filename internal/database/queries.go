package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// querier is satisfied by both *DB and *Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp stored as SQLite TEXT. It returns the
// zero time when no known format matches.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

const observanceColumns = `
	id, name, kind, calendar, month, day,
	easter_offset, easter_mode, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObservance(row rowScanner) (*Observance, error) {
	var o Observance
	var easterMode sql.NullInt64
	var createdAt, updatedAt string

	err := row.Scan(
		&o.ID, &o.Name, &o.Kind, &o.Calendar, &o.Month, &o.Day,
		&o.EasterOffset, &easterMode, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if easterMode.Valid {
		mode := int(easterMode.Int64)
		o.EasterMode = &mode
	}
	o.CreatedAt = parseTimestamp(createdAt)
	o.UpdatedAt = parseTimestamp(updatedAt)

	return &o, nil
}

func nullableMode(mode *int) sql.NullInt64 {
	if mode == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*mode), Valid: true}
}

// =============================================================================
// Observance Queries
// =============================================================================

// ListObservances returns every observance ordered by name.
func (db *DB) ListObservances(ctx context.Context) ([]Observance, error) {
	query := `SELECT ` + observanceColumns + ` FROM observances ORDER BY name`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query observances: %w", err)
	}
	defer rows.Close()

	var observances []Observance
	for rows.Next() {
		o, err := scanObservance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan observance: %w", err)
		}
		observances = append(observances, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observances: %w", err)
	}

	return observances, nil
}

// GetObservanceByName returns the observance called name, or ErrNotFound.
func (db *DB) GetObservanceByName(ctx context.Context, name string) (*Observance, error) {
	query := `SELECT ` + observanceColumns + ` FROM observances WHERE name = ?`

	o, err := scanObservance(db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get observance %q: %w", name, err)
	}

	return o, nil
}

// CreateObservance inserts o and fills in its ID and timestamps. A name
// that already exists yields ErrDuplicate.
func (db *DB) CreateObservance(ctx context.Context, o *Observance) error {
	return createObservance(ctx, db, o)
}

// UpsertObservance inserts o, or replaces the definition of the existing
// observance with the same name.
func (db *DB) UpsertObservance(ctx context.Context, o *Observance) error {
	return upsertObservance(ctx, db, o)
}

// UpsertObservance is UpsertObservance within the transaction.
func (tx *Tx) UpsertObservance(ctx context.Context, o *Observance) error {
	return upsertObservance(ctx, tx, o)
}

// DeleteObservance removes the observance called name. Returns ErrNotFound
// if there is none.
func (db *DB) DeleteObservance(ctx context.Context, name string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM observances WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete observance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func createObservance(ctx context.Context, q querier, o *Observance) error {
	if err := o.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO observances (name, kind, calendar, month, day, easter_offset, easter_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + observanceColumns

	created, err := scanObservance(q.QueryRowContext(ctx, query,
		o.Name, o.Kind, o.Calendar, o.Month, o.Day, o.EasterOffset, nullableMode(o.EasterMode),
	))
	if isUniqueViolation(err) {
		return fmt.Errorf("observance %q: %w", o.Name, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("insert observance: %w", err)
	}

	*o = *created
	return nil
}

func upsertObservance(ctx context.Context, q querier, o *Observance) error {
	if err := o.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO observances (name, kind, calendar, month, day, easter_offset, easter_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			calendar = excluded.calendar,
			month = excluded.month,
			day = excluded.day,
			easter_offset = excluded.easter_offset,
			easter_mode = excluded.easter_mode,
			updated_at = datetime('now')
		RETURNING ` + observanceColumns

	saved, err := scanObservance(q.QueryRowContext(ctx, query,
		o.Name, o.Kind, o.Calendar, o.Month, o.Day, o.EasterOffset, nullableMode(o.EasterMode),
	))
	if err != nil {
		return fmt.Errorf("upsert observance: %w", err)
	}

	*o = *saved
	return nil
}
