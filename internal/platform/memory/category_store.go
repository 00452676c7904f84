package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// CategoryStore implements store.CategoryStore over the shared in-memory DB.
type CategoryStore struct {
	db *DB
}

// NewCategoryStore creates a new in-memory implementation of the CategoryStore interface.
func NewCategoryStore(db *DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Ensure CategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*CategoryStore)(nil)

// Create implements store.CategoryStore.Create
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	return s.insertLocked(category)
}

// CreateAll implements store.CategoryStore.CreateAll
// All categories are inserted under one lock hold: either every category
// is stored or none is.
func (s *CategoryStore) CreateAll(ctx context.Context, categories []*domain.Category) error {
	for _, category := range categories {
		if err := category.Validate(); err != nil {
			return err
		}
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, category := range categories {
		if _, exists := s.db.categories[category.ID]; exists {
			return store.ErrDuplicate
		}
	}

	for _, category := range categories {
		// Duplicates were ruled out above, so insertion cannot fail.
		_ = s.insertLocked(category)
	}
	return nil
}

// ListByUser implements store.CategoryStore.ListByUser
func (s *CategoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	categories := make([]*domain.Category, 0)
	for _, id := range s.db.categoryOrder {
		category, exists := s.db.categories[id]
		if !exists || category.UserID != userID {
			continue
		}
		c := category
		categories = append(categories, &c)
	}
	return categories, nil
}

// Delete implements store.CategoryStore.Delete
func (s *CategoryStore) Delete(ctx context.Context, userID uuid.UUID, categoryID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if !s.db.categoryOwnedLocked(userID, categoryID) {
		return store.ErrCategoryNotFound
	}

	// Mirror the relational backend's foreign key: a category that still
	// has tasks cannot be removed.
	for _, task := range s.db.tasks {
		if task.CategoryID == categoryID {
			return store.ErrInvalidEntity
		}
	}

	delete(s.db.categories, categoryID)
	for i, id := range s.db.categoryOrder {
		if id == categoryID {
			s.db.categoryOrder = append(s.db.categoryOrder[:i], s.db.categoryOrder[i+1:]...)
			break
		}
	}
	return nil
}

// insertLocked stores one category. The caller must hold db.mu.
func (s *CategoryStore) insertLocked(category *domain.Category) error {
	if _, exists := s.db.categories[category.ID]; exists {
		return store.ErrDuplicate
	}
	s.db.categories[category.ID] = *category
	s.db.categoryOrder = append(s.db.categoryOrder, category.ID)
	return nil
}
