package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskboard/taskboard-api/internal/store"
)

func TestIsNotFoundError(t *testing.T) {
	notFound := []error{
		store.ErrNotFound,
		store.ErrUserNotFound,
		store.ErrSessionNotFound,
		store.ErrCategoryNotFound,
		store.ErrTaskNotFound,
		fmt.Errorf("lookup failed: %w", store.ErrUserNotFound),
	}
	for _, err := range notFound {
		assert.True(t, store.IsNotFoundError(err), "%v", err)
	}

	other := []error{
		nil,
		store.ErrDuplicate,
		store.ErrCategoryNotOwned,
		errors.New("connection refused"),
	}
	for _, err := range other {
		assert.False(t, store.IsNotFoundError(err), "%v", err)
	}
}

func TestIsDuplicateError(t *testing.T) {
	duplicates := []error{
		store.ErrDuplicate,
		store.ErrUsernameExists,
		store.ErrTokenExists,
		fmt.Errorf("insert failed: %w", store.ErrUsernameExists),
	}
	for _, err := range duplicates {
		assert.True(t, store.IsDuplicateError(err), "%v", err)
	}

	assert.False(t, store.IsDuplicateError(store.ErrNotFound))
	assert.False(t, store.IsDuplicateError(nil))
}
