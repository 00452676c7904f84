package memory

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// SessionStore implements store.SessionStore over the shared in-memory DB.
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a new in-memory implementation of the SessionStore interface.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// Create implements store.SessionStore.Create
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, exists := s.db.sessions[session.Token]; exists {
		return store.ErrTokenExists
	}

	s.db.sessions[session.Token] = *session
	return nil
}

// GetByToken implements store.SessionStore.GetByToken
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	session, exists := s.db.sessions[token]
	if !exists {
		return nil, store.ErrSessionNotFound
	}

	return &session, nil
}

// Delete implements store.SessionStore.Delete
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, exists := s.db.sessions[token]; !exists {
		return store.ErrSessionNotFound
	}

	delete(s.db.sessions, token)
	return nil
}
