package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// CategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new PostgreSQL implementation of the CategoryStore interface.
// It takes the full connection pool rather than a DBTX because CreateAll
// opens its own transaction.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Ensure CategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*CategoryStore)(nil)

const insertCategoryQuery = `
	INSERT INTO task_categories (id, user_id, label, created_at)
	VALUES ($1, $2, $3, $4)
`

// Create implements store.CategoryStore.Create
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContext(ctx)

	if err := category.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, insertCategoryQuery,
		category.ID,
		category.UserID,
		category.Label,
		category.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID))
		return MapError(err)
	}

	return nil
}

// CreateAll implements store.CategoryStore.CreateAll
// All inserts run in a single transaction: either every category is
// stored or none is.
func (s *CategoryStore) CreateAll(ctx context.Context, categories []*domain.Category) error {
	for _, category := range categories {
		if err := category.Validate(); err != nil {
			return err
		}
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		for _, category := range categories {
			_, err := tx.ExecContext(ctx, insertCategoryQuery,
				category.ID,
				category.UserID,
				category.Label,
				category.CreatedAt,
			)
			if err != nil {
				return MapError(err)
			}
		}
		return nil
	})
}

// ListByUser implements store.CategoryStore.ListByUser
func (s *CategoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, user_id, label, created_at
		FROM task_categories
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list categories",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Label, &category.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return categories, nil
}

// Delete implements store.CategoryStore.Delete
// The WHERE clause is scoped to the owner, so another user's category
// reads as not found. A category still referenced by tasks trips the
// tasks.category_id foreign key and surfaces as ErrInvalidEntity.
func (s *CategoryStore) Delete(ctx context.Context, userID uuid.UUID, categoryID string) error {
	query := `DELETE FROM task_categories WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, categoryID, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", categoryID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}
