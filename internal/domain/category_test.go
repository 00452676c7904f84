package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewCategory(t *testing.T) {
	userID := uuid.New()

	category, err := NewCategory(userID, "Work")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(category.ID) != EntityIDLength {
		t.Errorf("Expected ID length %d, got %d", EntityIDLength, len(category.ID))
	}

	if category.UserID != userID {
		t.Errorf("Expected user ID %v, got %v", userID, category.UserID)
	}

	if category.Label != "Work" {
		t.Errorf("Expected label Work, got %s", category.Label)
	}

	if category.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test invalid inputs
	_, err = NewCategory(uuid.Nil, "Work")
	if err != ErrEmptyCategoryUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCategoryUserID, err)
	}

	_, err = NewCategory(userID, "")
	if err != ErrEmptyCategoryLabel {
		t.Errorf("Expected error %v, got %v", ErrEmptyCategoryLabel, err)
	}
}

func TestCategoryValidate(t *testing.T) {
	validCategory := Category{
		ID:     "0123456789abcdef0123456789abcdef",
		UserID: uuid.New(),
		Label:  "Work",
	}

	if err := validCategory.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidCategory := validCategory
	invalidCategory.ID = ""
	if err := invalidCategory.Validate(); err != ErrInvalidID {
		t.Errorf("Expected error %v, got %v", ErrInvalidID, err)
	}

	invalidCategory = validCategory
	invalidCategory.UserID = uuid.Nil
	if err := invalidCategory.Validate(); err != ErrEmptyCategoryUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCategoryUserID, err)
	}

	invalidCategory = validCategory
	invalidCategory.Label = ""
	if err := invalidCategory.Validate(); err != ErrEmptyCategoryLabel {
		t.Errorf("Expected error %v, got %v", ErrEmptyCategoryLabel, err)
	}
}
