package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// UserStore implements store.UserStore over the shared in-memory DB.
type UserStore struct {
	db *DB
}

// NewUserStore creates a new in-memory implementation of the UserStore interface.
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, exists := s.db.usersByName[user.Username]; exists {
		return store.ErrUsernameExists
	}
	if _, exists := s.db.usersByID[user.ID]; exists {
		return store.ErrDuplicate
	}

	s.db.usersByID[user.ID] = *user
	s.db.usersByName[user.Username] = user.ID
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	user, exists := s.db.usersByID[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	// Return a copy so callers cannot mutate stored state.
	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	id, exists := s.db.usersByName[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	user := s.db.usersByID[id]
	return &user, nil
}
