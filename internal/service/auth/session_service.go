// Package auth provides session-token authentication and password
// hashing services.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// sessionTokenBytes is the number of random bytes per token. 48 bytes of
// URL-safe base64 encode to exactly 64 characters, the full width of the
// sessions.token column.
const sessionTokenBytes = 48

// SessionService issues, validates and revokes opaque session tokens.
// Token storage and lookup are delegated to a SessionStore; the service
// itself holds no state. Sessions have no expiry: a token stays valid
// until EndSession revokes it.
type SessionService interface {
	// StartSession creates a new session for the user and returns it.
	// A user may hold any number of concurrent sessions.
	StartSession(ctx context.Context, userID uuid.UUID) (*domain.Session, error)

	// Authenticate resolves a presented token to the bound user ID.
	// Returns ErrUnauthorized if the token is malformed or no active
	// session holds it.
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)

	// EndSession revokes the session holding the token.
	// Returns ErrUnauthorized if no active session holds it.
	EndSession(ctx context.Context, token string) error
}

// sessionService is the SessionStore-backed SessionService implementation.
type sessionService struct {
	sessions store.SessionStore
}

// NewSessionService creates a SessionService backed by the given store.
func NewSessionService(sessions store.SessionStore) SessionService {
	return &sessionService{sessions: sessions}
}

// StartSession implements SessionService.StartSession
func (s *sessionService) StartSession(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(token, userID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		logger.FromContext(ctx).Error("failed to persist session",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	return session, nil
}

// Authenticate implements SessionService.Authenticate
func (s *sessionService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	// Reject malformed tokens before touching the store; everything the
	// service issues is exactly SessionTokenLength characters.
	if len(token) != domain.SessionTokenLength {
		return uuid.Nil, ErrUnauthorized
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return uuid.Nil, ErrUnauthorized
		}
		return uuid.Nil, err
	}

	return session.UserID, nil
}

// EndSession implements SessionService.EndSession
func (s *sessionService) EndSession(ctx context.Context, token string) error {
	if len(token) != domain.SessionTokenLength {
		return ErrUnauthorized
	}

	err := s.sessions.Delete(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	return nil
}

// GenerateSessionToken returns a new opaque session token: 48 bytes from
// a cryptographically secure source, URL-safe base64 encoded to exactly
// 64 characters, safe for use as a cookie value.
func GenerateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
