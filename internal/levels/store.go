// internal/levels/store.go
//
// Persistence interface for user-submitted levels, plus the in-memory
// implementation used in development and tests. The curated pack in this
// package is read-only; the Store only holds levels players create.

package levels

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound reports a missing level ID.
var ErrNotFound = errors.New("levels: not found")

// Store defines the persistence interface for user-submitted levels.
// Implementations may be backed by memory (this package) or SQLite.
type Store interface {
	// Save persists a level, assigning an ID and creation time if unset.
	Save(ctx context.Context, l *Level) error

	// Get retrieves a level by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (*Level, error)

	// List returns all stored levels, most recent first.
	List(ctx context.Context) ([]*Level, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex
	levels map[string]*Level
	order  []string // insertion order, newest last
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{levels: make(map[string]*Level)}
}

// Save adds or updates the level in the map.
func (m *memory) Save(ctx context.Context, l *Level) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.levels[l.ID]; !ok {
		m.order = append(m.order, l.ID)
	}
	m.levels[l.ID] = l
	return nil
}

// Get looks up a level by ID.
func (m *memory) Get(ctx context.Context, id string) (*Level, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.levels[id]; ok {
		return l, nil
	}
	return nil, ErrNotFound
}

// List returns stored levels, most recently saved first.
func (m *memory) List(ctx context.Context) ([]*Level, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Level, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.levels[m.order[i]])
	}
	return out, nil
}
