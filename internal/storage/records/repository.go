package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no record exists under the requested name.
var ErrNotFound = errors.New("record not found")

// Repository stores whole JSON documents under a unique name.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

type Record struct {
	Name      string    `json:"name"`
	Payload   []byte    `json:"payload"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Get loads the record stored under name.
func (r *Repository) Get(ctx context.Context, name string) (Record, error) {
	var (
		rec     Record
		payload string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT name, payload, updated_at
		FROM records
		WHERE name = ?
	`, name).Scan(&rec.Name, &payload, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("select record %s: %w", name, err)
	}
	rec.Payload = []byte(payload)
	return rec, nil
}

// Put replaces the record stored under name. The write is committed before Put returns.
func (r *Repository) Put(ctx context.Context, name string, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (name, payload)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`, name, string(payload))
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", name, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Names lists stored record names alphabetically.
func (r *Repository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM records ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan record name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return names, nil
}

// Close releases the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}
