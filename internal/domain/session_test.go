package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewSession(t *testing.T) {
	token := strings.Repeat("a", SessionTokenLength)
	userID := uuid.New()

	session, err := NewSession(token, userID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if session.Token != token {
		t.Errorf("Expected token %s, got %s", token, session.Token)
	}

	if session.UserID != userID {
		t.Errorf("Expected user ID %v, got %v", userID, session.UserID)
	}

	if session.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test wrong token lengths
	_, err = NewSession("", userID)
	if err != ErrInvalidSessionToken {
		t.Errorf("Expected error %v, got %v", ErrInvalidSessionToken, err)
	}

	_, err = NewSession(strings.Repeat("a", SessionTokenLength-1), userID)
	if err != ErrInvalidSessionToken {
		t.Errorf("Expected error %v, got %v", ErrInvalidSessionToken, err)
	}

	_, err = NewSession(strings.Repeat("a", SessionTokenLength+1), userID)
	if err != ErrInvalidSessionToken {
		t.Errorf("Expected error %v, got %v", ErrInvalidSessionToken, err)
	}

	// Test missing user
	_, err = NewSession(token, uuid.Nil)
	if err != ErrEmptySessionUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptySessionUserID, err)
	}
}
