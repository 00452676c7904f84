package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/api"
)

func TestCreateAndListCategories(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")

	workID := env.createCategoryViaAPI(t, token, "Work")
	personalID := env.createCategoryViaAPI(t, token, "Personal")

	rr := env.do(t, http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []api.CategoryResponse
	decodeBody(t, rr, &categories)

	// Defaults first, then the new categories in creation order.
	require.Len(t, categories, 5)
	assert.Equal(t, "Work", categories[3].Label)
	assert.Equal(t, workID, categories[3].CategoryID)
	assert.Equal(t, "Personal", categories[4].Label)
	assert.Equal(t, personalID, categories[4].CategoryID)
}

func TestCreateCategoryRejectsEmptyLabel(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")

	rr := env.do(t, http.MethodPost, "/api/categories", token,
		api.CreateCategoryRequest{Label: ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCategoriesAreScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.register(t, "alice_01", "Passw0rd!")
	bobToken := env.register(t, "bob_at_work", "Passw0rd!")

	env.createCategoryViaAPI(t, aliceToken, "Alice only")

	rr := env.do(t, http.MethodGet, "/api/categories", bobToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []api.CategoryResponse
	decodeBody(t, rr, &categories)
	for _, category := range categories {
		assert.NotEqual(t, "Alice only", category.Label)
	}
}

func TestDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")
	categoryID := env.createCategoryViaAPI(t, token, "Disposable")

	rr := env.do(t, http.MethodDelete, "/api/categories/"+categoryID, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodDelete, "/api/categories/"+categoryID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteCategoryWithTasks(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice_01", "Passw0rd!")
	categoryID := env.createCategoryViaAPI(t, token, "Occupied")
	env.createTaskViaAPI(t, token, categoryID, "blocker")

	rr := env.do(t, http.MethodDelete, "/api/categories/"+categoryID, token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteCategoryOfAnotherUser(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.register(t, "alice_01", "Passw0rd!")
	malloryToken := env.register(t, "mallory_9", "Passw0rd!")

	categoryID := env.createCategoryViaAPI(t, aliceToken, "Protected")

	rr := env.do(t, http.MethodDelete, "/api/categories/"+categoryID, malloryToken, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Alice still sees it.
	rr = env.do(t, http.MethodGet, "/api/categories", aliceToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []api.CategoryResponse
	decodeBody(t, rr, &categories)

	var found bool
	for _, category := range categories {
		if category.CategoryID == categoryID {
			found = true
		}
	}
	assert.True(t, found)
}
