package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskStore implements store.TaskStore over the shared in-memory DB.
//
// The category-ownership check and the task write run under the same
// lock hold, so a category cannot disappear between check and insert.
type TaskStore struct {
	db *DB
}

// NewTaskStore creates a new in-memory implementation of the TaskStore interface.
func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{db: db}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if !s.db.categoryOwnedLocked(task.UserID, task.CategoryID) {
		return store.ErrCategoryNotOwned
	}
	if _, exists := s.db.tasks[task.ID]; exists {
		return store.ErrDuplicate
	}

	s.db.tasks[task.ID] = *task
	s.db.taskOrder = append(s.db.taskOrder, task.ID)
	return nil
}

// ListByUser implements store.TaskStore.ListByUser
func (s *TaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tasks := make([]*domain.Task, 0)
	for _, id := range s.db.taskOrder {
		task, exists := s.db.tasks[id]
		if !exists || task.UserID != userID {
			continue
		}
		t := task
		tasks = append(tasks, &t)
	}
	return tasks, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	// Category ownership is verified before the task lookup, the same
	// order the relational backend locks in, so both backends report
	// identical error kinds for any update sequence.
	if !s.db.categoryOwnedLocked(task.UserID, task.CategoryID) {
		return store.ErrCategoryNotOwned
	}

	existing, exists := s.db.tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	existing.Label = task.Label
	existing.Description = task.Description
	existing.CategoryID = task.CategoryID
	s.db.tasks[task.ID] = existing
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, userID uuid.UUID, taskID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	task, exists := s.db.tasks[taskID]
	if !exists || task.UserID != userID {
		return store.ErrTaskNotFound
	}

	delete(s.db.tasks, taskID)
	for i, id := range s.db.taskOrder {
		if id == taskID {
			s.db.taskOrder = append(s.db.taskOrder[:i], s.db.taskOrder[i+1:]...)
			break
		}
	}
	return nil
}
