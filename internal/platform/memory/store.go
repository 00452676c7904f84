package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// DB holds all in-memory state. A single exclusive lock serializes every
// operation; contention is expected to be low and no operation holds the
// lock across I/O. The per-entity store types share one DB so that
// cross-entity checks (category ownership before a task write) happen
// inside the same critical section as the write itself.
type DB struct {
	mu sync.Mutex

	usersByID   map[uuid.UUID]domain.User
	usersByName map[string]uuid.UUID
	sessions    map[string]domain.Session

	// Categories and tasks keep both a lookup map and a global insertion
	// order so per-user listings come back in creation order, matching
	// the relational backend's ORDER BY created_at.
	categories    map[string]domain.Category
	categoryOrder []string
	tasks         map[string]domain.Task
	taskOrder     []string
}

// NewDB creates an empty in-memory database.
func NewDB() *DB {
	return &DB{
		usersByID:   make(map[uuid.UUID]domain.User),
		usersByName: make(map[string]uuid.UUID),
		sessions:    make(map[string]domain.Session),
		categories:  make(map[string]domain.Category),
		tasks:       make(map[string]domain.Task),
	}
}

// categoryOwnedLocked reports whether the user owns the given category.
// The caller must hold db.mu.
func (db *DB) categoryOwnedLocked(userID uuid.UUID, categoryID string) bool {
	category, exists := db.categories[categoryID]
	return exists && category.UserID == userID
}
