package api

import (
	"log/slog"
	"net/http"

	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskHandler handles task and board API requests.
type TaskHandler struct {
	taskStore     store.TaskStore
	categoryStore store.CategoryStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, categoryStore store.CategoryStore) *TaskHandler {
	return &TaskHandler{
		taskStore:     taskStore,
		categoryStore: categoryStore,
	}
}

// GetBoard handles GET /tasks: the user's categories in creation order,
// each with its tasks.
func (h *TaskHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	categories, err := h.categoryStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load board")
		return
	}

	tasks, err := h.taskStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load board")
		return
	}

	board, err := assembleBoard(categories, tasks)
	if err != nil {
		// Every stored task references one of its owner's categories, so
		// an unmatched task means the backend broke that invariant.
		slog.Error("board assembly failed", "error", err, "user_id", userID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to load board")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, board)
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	input, ok := decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := domain.NewTask(userID, input.CategoryID, input.Label, input.Description)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, TaskResponse{
		TaskID:      task.ID,
		CategoryID:  task.CategoryID,
		Label:       task.Label,
		Description: task.Description,
	})
}

// ModifyTask handles PUT /tasks/{id}.
func (h *TaskHandler) ModifyTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := getPathEntityID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	input, ok := decodeTaskInput(w, r)
	if !ok {
		return
	}

	task := &domain.Task{
		ID:          taskID,
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Label:       input.Label,
		Description: input.Description,
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TaskResponse{
		TaskID:      task.ID,
		CategoryID:  task.CategoryID,
		Label:       task.Label,
		Description: task.Description,
	})
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := getPathEntityID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskStore.Delete(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// decodeTaskInput decodes and validates a TaskInput body, writing the
// error response itself when the body is unusable.
func decodeTaskInput(w http.ResponseWriter, r *http.Request) (TaskInput, bool) {
	var input TaskInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return input, false
	}
	if err := shared.ValidateRequest(input); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return input, false
	}
	return input, true
}
