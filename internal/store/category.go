package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// CategoryStore defines the interface for task category persistence.
// Every operation is scoped to an owner: no call returns or mutates
// another user's categories.
type CategoryStore interface {
	// Create saves a new category to the store.
	// Returns ErrDuplicate if the category ID is already in use.
	// Returns validation errors from the domain Category if data is invalid.
	Create(ctx context.Context, category *domain.Category) error

	// CreateAll saves several categories atomically: either every
	// category is stored or none is. All categories must share an owner.
	CreateAll(ctx context.Context, categories []*domain.Category) error

	// ListByUser returns the user's categories in creation order.
	// A user with no categories yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)

	// Delete removes one of the user's categories.
	// Returns ErrCategoryNotFound if the user owns no such category.
	// Returns ErrInvalidEntity if tasks still reference the category.
	Delete(ctx context.Context, userID uuid.UUID, categoryID string) error
}
