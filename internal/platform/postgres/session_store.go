package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// SessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type SessionStore struct {
	db store.DBTX
}

// NewSessionStore creates a new PostgreSQL implementation of the SessionStore interface.
func NewSessionStore(db store.DBTX) *SessionStore {
	return &SessionStore{db: db}
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// Create implements store.SessionStore.Create
// Returns store.ErrTokenExists if the token is already in use.
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	log := logger.FromContext(ctx)

	if err := session.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query,
		session.Token,
		session.UserID,
		session.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrTokenExists
		}
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("user_id", session.UserID.String()))
		return MapError(err)
	}

	return nil
}

// GetByToken implements store.SessionStore.GetByToken
// Returns store.ErrSessionNotFound if no session holds the token.
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `
		SELECT token, user_id, created_at
		FROM sessions
		WHERE token = $1
	`
	var session domain.Session
	err := s.db.QueryRowContext(ctx, query, token).
		Scan(&session.Token, &session.UserID, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSessionNotFound
		}
		logger.FromContext(ctx).Error("failed to scan session row",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &session, nil
}

// Delete implements store.SessionStore.Delete
// Returns store.ErrSessionNotFound if no session holds the token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	result, err := s.db.ExecContext(ctx, query, token)
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete session",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrSessionNotFound)
}
