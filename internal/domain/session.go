package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SessionTokenLength is the exact length of a session token. It matches
// the VARCHAR(64) width of the sessions.token column.
const SessionTokenLength = 64

// Common validation errors for Session
var (
	ErrInvalidSessionToken = errors.New("session token must be exactly 64 characters")
	ErrEmptySessionUserID  = errors.New("session user ID cannot be empty")
)

// Session binds an opaque bearer token to a user identity. A user may
// hold any number of concurrent sessions; a session lives until it is
// explicitly deleted at logout.
type Session struct {
	Token     string    `json:"-"` // Bearer credential, never serialized
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSession creates a Session binding the given token to a user.
// The token is generated by the session service, not here.
func NewSession(token string, userID uuid.UUID) (*Session, error) {
	session := &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if len(s.Token) != SessionTokenLength {
		return ErrInvalidSessionToken
	}

	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}

	return nil
}
