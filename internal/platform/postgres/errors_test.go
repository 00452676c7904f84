package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taskboard/taskboard-api/internal/platform/postgres"
	"github.com/taskboard/taskboard-api/internal/store"
)

// Mock PgError creation helper
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		SchemaName:     "public",
		TableName:      "test_table",
		ColumnName:     "test_column",
		ConstraintName: "test_constraint",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "wrapped no rows",
			err:      fmt.Errorf("query failed: %w", sql.ErrNoRows),
			expected: store.ErrNotFound,
		},
		{
			name:     "unique violation",
			err:      newPgError("23505"),
			expected: store.ErrDuplicate,
		},
		{
			name:     "foreign key violation",
			err:      newPgError("23503"),
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "not null violation",
			err:      newPgError("23502"),
			expected: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := postgres.MapError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}

	t.Run("unknown error passes through", func(t *testing.T) {
		original := errors.New("connection refused")
		assert.Equal(t, original, postgres.MapError(original))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.True(t, postgres.IsUniqueViolation(
		fmt.Errorf("insert failed: %w", newPgError("23505"))))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsForeignKeyViolation(newPgError("23503")))
	assert.False(t, postgres.IsForeignKeyViolation(newPgError("23505")))
	assert.False(t, postgres.IsForeignKeyViolation(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	notFound := store.ErrTaskNotFound

	t.Run("rows affected", func(t *testing.T) {
		err := postgres.CheckRowsAffected(MockResult{rowsAffected: 1}, notFound)
		assert.NoError(t, err)
	})

	t.Run("zero rows", func(t *testing.T) {
		err := postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, notFound)
		assert.ErrorIs(t, err, notFound)
	})

	t.Run("rows affected error", func(t *testing.T) {
		err := postgres.CheckRowsAffected(
			MockResult{err: errors.New("driver does not support RowsAffected")},
			notFound,
		)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, notFound)
	})

	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, postgres.CheckRowsAffected(nil, notFound))
	})
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	t.Run("unique violation maps to specific error", func(t *testing.T) {
		err := postgres.MapUniqueViolation(newPgError("23505"), store.ErrUsernameExists)
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("other errors fall through to MapError", func(t *testing.T) {
		err := postgres.MapUniqueViolation(sql.ErrNoRows, store.ErrUsernameExists)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
