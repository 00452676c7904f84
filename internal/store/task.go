package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every operation is scoped to an owner: no call returns or mutates
// another user's tasks.
//
// A task's category must belong to the task's own user. The foreign keys
// alone cannot express that cross-table invariant, so Create and Update
// verify ownership inside the same critical section as the write.
type TaskStore interface {
	// Create saves a new task to the store after verifying that the
	// task's category belongs to the task's user.
	// Returns ErrCategoryNotOwned if it does not (or does not exist).
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser returns the user's tasks in creation order.
	// A user with no tasks yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Update replaces the label, description and category of one of the
	// user's tasks, re-verifying category ownership.
	// Returns ErrTaskNotFound if the user owns no such task.
	// Returns ErrCategoryNotOwned if the new category is not the user's.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes one of the user's tasks.
	// Returns ErrTaskNotFound if the user owns no such task.
	Delete(ctx context.Context, userID uuid.UUID, taskID string) error
}
