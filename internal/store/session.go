package store

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// SessionStore defines the interface for session data persistence.
// Tokens are generated by the session service, never by the store.
type SessionStore interface {
	// Create saves a new session to the store.
	// Returns ErrTokenExists if the token is already in use.
	// Returns validation errors from the domain Session if data is invalid.
	Create(ctx context.Context, session *domain.Session) error

	// GetByToken resolves a session token to its session.
	// Returns ErrSessionNotFound if no session holds the token.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)

	// Delete removes a session from the store, revoking the token.
	// Returns ErrSessionNotFound if no session holds the token, so a
	// double logout is observable rather than silently absorbed.
	Delete(ctx context.Context, token string) error
}
