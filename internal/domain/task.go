package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskUserID      = errors.New("task user ID cannot be empty")
	ErrEmptyTaskLabel       = errors.New("task label cannot be empty")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
)

// Task is a user-owned unit of work assigned to exactly one category.
// The category must belong to the same user; the stores enforce that
// invariant at write time.
type Task struct {
	ID          string    `json:"task_id"`
	UserID      uuid.UUID `json:"-"`
	CategoryID  string    `json:"category_id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates a Task owned by the given user in the given category.
// It generates a random opaque ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, categoryID, label, description string) (*Task, error) {
	id, err := NewEntityID()
	if err != nil {
		return nil, err
	}

	task := &Task{
		ID:          id,
		UserID:      userID,
		CategoryID:  categoryID,
		Label:       label,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if err := ValidateEntityID(t.ID); err != nil {
		return err
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if err := ValidateEntityID(t.CategoryID); err != nil {
		return err
	}

	if t.Label == "" {
		return ErrEmptyTaskLabel
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	return nil
}
