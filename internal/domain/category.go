package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Category
var (
	ErrEmptyCategoryUserID = errors.New("category user ID cannot be empty")
	ErrEmptyCategoryLabel  = errors.New("category label cannot be empty")
)

// Category is a user-owned grouping of tasks. The ID is an opaque string
// generated at creation time; uniqueness is global, not per user.
type Category struct {
	ID        string    `json:"category_id"`
	UserID    uuid.UUID `json:"-"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory creates a Category owned by the given user. It generates a
// random opaque ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewCategory(userID uuid.UUID, label string) (*Category, error) {
	id, err := NewEntityID()
	if err != nil {
		return nil, err
	}

	category := &Category{
		ID:        id,
		UserID:    userID,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if err := ValidateEntityID(c.ID); err != nil {
		return err
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyCategoryUserID
	}

	if c.Label == "" {
		return ErrEmptyCategoryLabel
	}

	return nil
}
