package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// EntityIDLength is the length of generated category and task IDs.
// The schema columns are VARCHAR(64), so 32 hex characters leave headroom.
const EntityIDLength = 32

// NewEntityID generates a random opaque identifier for categories and tasks.
// IDs are 16 bytes from a cryptographically secure source, hex-encoded to
// 32 characters.
func NewEntityID() (string, error) {
	b := make([]byte, EntityIDLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate entity ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidateEntityID checks that an identifier is non-empty and fits the
// schema column width.
func ValidateEntityID(id string) error {
	if id == "" {
		return ErrInvalidID
	}
	if len(id) > 64 {
		return ErrInvalidID
	}
	return nil
}
