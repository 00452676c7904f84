package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
//
// Create and Update verify category ownership inside the same
// transaction as the write, with the category row locked. Without that,
// the category could be deleted or reassigned between the check and the
// insert; this is the principal correctness hazard of this backend.
type TaskStore struct {
	db *sql.DB
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It takes the full connection pool rather than a DBTX because the write
// paths open their own transactions.
func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// lockCategoryForUser locks the category row and verifies it belongs to
// the user. Returns store.ErrCategoryNotOwned when the category is
// missing or owned by someone else; the two cases are deliberately
// indistinguishable.
func lockCategoryForUser(ctx context.Context, tx *sql.Tx, userID uuid.UUID, categoryID string) error {
	query := `
		SELECT 1 FROM task_categories
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`
	var one int
	err := tx.QueryRowContext(ctx, query, categoryID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrCategoryNotOwned
		}
		return MapError(err)
	}
	return nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := lockCategoryForUser(ctx, tx, task.UserID, task.CategoryID); err != nil {
			return err
		}

		query := `
			INSERT INTO tasks (id, user_id, category_id, label, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := tx.ExecContext(ctx, query,
			task.ID,
			task.UserID,
			task.CategoryID,
			task.Label,
			task.Description,
			task.CreatedAt,
		)
		if err != nil {
			return MapError(err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrCategoryNotOwned) {
			log.Error("failed to create task",
				slog.String("error", err.Error()),
				slog.String("task_id", task.ID))
		}
		return err
	}

	return nil
}

// ListByUser implements store.TaskStore.ListByUser
func (s *TaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, user_id, category_id, label, description, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.CategoryID,
			&task.Label,
			&task.Description,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := lockCategoryForUser(ctx, tx, task.UserID, task.CategoryID); err != nil {
			return err
		}

		query := `
			UPDATE tasks
			SET label = $1, description = $2, category_id = $3
			WHERE id = $4 AND user_id = $5
		`
		result, err := tx.ExecContext(ctx, query,
			task.Label,
			task.Description,
			task.CategoryID,
			task.ID,
			task.UserID,
		)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result, store.ErrTaskNotFound)
	})
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, userID uuid.UUID, taskID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}
