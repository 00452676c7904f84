package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Username and password rules are fully enforced by the domain package;
// the tags here only give early, cheap rejections.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=6,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse defines the successful response for authentication and
// user endpoints.
type UserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// CreateCategoryRequest defines the payload for the category creation endpoint.
type CreateCategoryRequest struct {
	Label string `json:"label" validate:"required,min=1"`
}

// CategoryResponse describes one task category.
type CategoryResponse struct {
	CategoryID string `json:"category_id"`
	Label      string `json:"label"`
}

// TaskInput defines the payload for task creation and modification.
type TaskInput struct {
	CategoryID  string `json:"category_id" validate:"required,min=1,max=64"`
	Label       string `json:"label"       validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
}

// TaskResponse describes one task.
type TaskResponse struct {
	TaskID      string `json:"task_id"`
	CategoryID  string `json:"category_id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// BoardCategory is one column of the task board: a category with its
// tasks in creation order.
type BoardCategory struct {
	CategoryID   string         `json:"category_id"`
	Label        string         `json:"label"`
	OrderedTasks []TaskResponse `json:"ordered_tasks"`
}

// BoardResponse is the full task board for one user: categories in
// creation order, each carrying its tasks.
type BoardResponse struct {
	OrderedCategories []BoardCategory `json:"ordered_categories"`
}
