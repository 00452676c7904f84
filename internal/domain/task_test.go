package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	userID := uuid.New()
	categoryID := "0123456789abcdef0123456789abcdef"

	task, err := NewTask(userID, categoryID, "Write report", "Quarterly numbers")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(task.ID) != EntityIDLength {
		t.Errorf("Expected ID length %d, got %d", EntityIDLength, len(task.ID))
	}

	if task.UserID != userID {
		t.Errorf("Expected user ID %v, got %v", userID, task.UserID)
	}

	if task.CategoryID != categoryID {
		t.Errorf("Expected category ID %s, got %s", categoryID, task.CategoryID)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test invalid inputs
	_, err = NewTask(uuid.Nil, categoryID, "Write report", "Quarterly numbers")
	if err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	_, err = NewTask(userID, "", "Write report", "Quarterly numbers")
	if err != ErrInvalidID {
		t.Errorf("Expected error %v, got %v", ErrInvalidID, err)
	}

	_, err = NewTask(userID, categoryID, "", "Quarterly numbers")
	if err != ErrEmptyTaskLabel {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskLabel, err)
	}

	_, err = NewTask(userID, categoryID, "Write report", "")
	if err != ErrEmptyTaskDescription {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskDescription, err)
	}
}
