// internal/levels/sqlite.go
//
// SQLite-backed Store implementation for user-submitted levels.
// Word lists are stored space-joined in a TEXT column; the schema lives
// in sql/001_levels.sql and is applied by the server's migration step.

package levels

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SQLStore persists levels in the levels table.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore constructs a Store over an open database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Save inserts a new level row, generating a UUID when the ID is unset.
func (s *SQLStore) Save(ctx context.Context, l *Level) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR REPLACE INTO levels (id, name, words, radius, created_at)
        VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Name, strings.Join(l.Words, " "), l.Radius, l.CreatedAt,
	)
	return err
}

// Get fetches a level by ID. Returns ErrNotFound for a missing row.
func (s *SQLStore) Get(ctx context.Context, id string) (*Level, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, name, words, radius, created_at FROM levels WHERE id = ?`, id)
	l, err := scanLevel(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return l, err
}

// List returns all stored levels, most recent first.
func (s *SQLStore) List(ctx context.Context) ([]*Level, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, words, radius, created_at
        FROM levels
        ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Level
	for rows.Next() {
		l, err := scanLevel(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// scanLevel reads one level row, splitting the space-joined word list.
func scanLevel(scan func(dest ...any) error) (*Level, error) {
	var l Level
	var words string
	if err := scan(&l.ID, &l.Name, &words, &l.Radius, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.Words = strings.Fields(words)
	return &l, nil
}
