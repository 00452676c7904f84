package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/api"
)

func TestGetBoard(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")

	rr := env.do(t, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var board api.BoardResponse
	decodeBody(t, rr, &board)

	// The default columns come back in creation order, all empty.
	require.Len(t, board.OrderedCategories, 3)
	assert.Equal(t, "ToDo", board.OrderedCategories[0].Label)
	assert.Equal(t, "In progress", board.OrderedCategories[1].Label)
	assert.Equal(t, "Completed", board.OrderedCategories[2].Label)
	for _, column := range board.OrderedCategories {
		assert.Empty(t, column.OrderedTasks)
	}
}

func TestCreateTaskAndBoardPlacement(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")

	categoryID := env.createCategoryViaAPI(t, token, "Work")
	first := env.createTaskViaAPI(t, token, categoryID, "write report")
	second := env.createTaskViaAPI(t, token, categoryID, "send report")

	rr := env.do(t, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var board api.BoardResponse
	decodeBody(t, rr, &board)
	require.Len(t, board.OrderedCategories, 4)

	work := board.OrderedCategories[3]
	assert.Equal(t, "Work", work.Label)
	require.Len(t, work.OrderedTasks, 2)
	assert.Equal(t, first, work.OrderedTasks[0].TaskID)
	assert.Equal(t, second, work.OrderedTasks[1].TaskID)
}

func TestCreateTaskRejectsBadCategory(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")

	t.Run("nonexistent category", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/tasks", token, api.TaskInput{
			CategoryID:  "ffffffffffffffffffffffffffffffff",
			Label:       "homeless",
			Description: "no category",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("another user's category", func(t *testing.T) {
		otherToken := env.register(t, "mallory_9", "Passw0rd!")
		otherCategory := env.createCategoryViaAPI(t, otherToken, "Private")

		rr := env.do(t, http.MethodPost, "/api/tasks", token, api.TaskInput{
			CategoryID:  otherCategory,
			Label:       "planted",
			Description: "should fail",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/tasks", token, api.TaskInput{
			CategoryID: "ffffffffffffffffffffffffffffffff",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestModifyTask(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")

	todo := env.createCategoryViaAPI(t, token, "Queue")
	done := env.createCategoryViaAPI(t, token, "Shipped")
	taskID := env.createTaskViaAPI(t, token, todo, "feature work")

	rr := env.do(t, http.MethodPut, "/api/tasks/"+taskID, token, api.TaskInput{
		CategoryID:  done,
		Label:       "feature work",
		Description: "shipped in v1.2",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp api.TaskResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, taskID, resp.TaskID)
	assert.Equal(t, done, resp.CategoryID)
	assert.Equal(t, "shipped in v1.2", resp.Description)

	// The board reflects the move.
	rr = env.do(t, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var board api.BoardResponse
	decodeBody(t, rr, &board)
	for _, column := range board.OrderedCategories {
		switch column.CategoryID {
		case todo:
			assert.Empty(t, column.OrderedTasks)
		case done:
			require.Len(t, column.OrderedTasks, 1)
			assert.Equal(t, taskID, column.OrderedTasks[0].TaskID)
		}
	}
}

func TestModifyTaskFailures(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")
	categoryID := env.createCategoryViaAPI(t, token, "Work")
	taskID := env.createTaskViaAPI(t, token, categoryID, "target")

	t.Run("unknown task", func(t *testing.T) {
		rr := env.do(t, http.MethodPut, "/api/tasks/ffffffffffffffffffffffffffffffff", token,
			api.TaskInput{CategoryID: categoryID, Label: "x", Description: "y"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unknown target category", func(t *testing.T) {
		rr := env.do(t, http.MethodPut, "/api/tasks/"+taskID, token,
			api.TaskInput{
				CategoryID:  "ffffffffffffffffffffffffffffffff",
				Label:       "x",
				Description: "y",
			})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("another user's task", func(t *testing.T) {
		otherToken := env.register(t, "mallory_9", "Passw0rd!")
		otherCategory := env.createCategoryViaAPI(t, otherToken, "Theirs")

		rr := env.do(t, http.MethodPut, "/api/tasks/"+taskID, otherToken,
			api.TaskInput{CategoryID: otherCategory, Label: "stolen", Description: "nope"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("another user's task and category", func(t *testing.T) {
		otherToken := env.register(t, "trudy_dev", "Passw0rd!")

		// Neither the task nor the category is Trudy's; the category
		// check fires first, so this reads as a bad category rather
		// than confirming the task ID exists.
		rr := env.do(t, http.MethodPut, "/api/tasks/"+taskID, otherToken,
			api.TaskInput{CategoryID: categoryID, Label: "stolen", Description: "nope"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")
	categoryID := env.createCategoryViaAPI(t, token, "Work")
	taskID := env.createTaskViaAPI(t, token, categoryID, "short lived")

	rr := env.do(t, http.MethodDelete, "/api/tasks/"+taskID, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// Deleting again reports the task as gone.
	rr = env.do(t, http.MethodDelete, "/api/tasks/"+taskID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Another user cannot delete what they do not own.
	otherToken := env.register(t, "mallory_9", "Passw0rd!")
	victim := env.createTaskViaAPI(t, token, categoryID, "survivor")
	rr = env.do(t, http.MethodDelete, "/api/tasks/"+victim, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
