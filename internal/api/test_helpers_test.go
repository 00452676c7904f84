package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/api"
	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/platform/memory"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

// testEnv runs the full handler stack over the in-memory backend,
// wired with the same routes as the production router.
type testEnv struct {
	router     *chi.Mux
	users      store.UserStore
	categories store.CategoryStore
	tasks      store.TaskStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := memory.NewDB()
	users := memory.NewUserStore(db)
	categories := memory.NewCategoryStore(db)
	tasks := memory.NewTaskStore(db)
	sessions := auth.NewSessionService(memory.NewSessionStore(db))
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	authHandler := api.NewAuthHandler(users, categories, sessions, hasher)
	taskHandler := api.NewTaskHandler(tasks, categories)
	categoryHandler := api.NewCategoryHandler(categories)
	sessionMiddleware := middleware.NewSessionMiddleware(sessions)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(sessionMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/user", authHandler.GetUser)

			r.Get("/tasks", taskHandler.GetBoard)
			r.Post("/tasks", taskHandler.CreateTask)
			r.Put("/tasks/{id}", taskHandler.ModifyTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)

			r.Get("/categories", categoryHandler.ListCategories)
			r.Post("/categories", categoryHandler.CreateCategory)
			r.Delete("/categories/{id}", categoryHandler.DeleteCategory)
		})
	})

	return &testEnv{
		router:     r,
		users:      users,
		categories: categories,
		tasks:      tasks,
	}
}

// do performs one request against the test router. A non-empty token is
// sent as the session cookie, the way browsers replay it.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// register creates an account and returns its session token.
func (e *testEnv) register(t *testing.T, username, password string) string {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, rr.Code, "register failed: %s", rr.Body.String())

	return sessionTokenFrom(t, rr)
}

// sessionTokenFrom extracts the session cookie set by a response.
func sessionTokenFrom(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			require.NotEmpty(t, cookie.Value, "session cookie is empty")
			return cookie.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

// decodeBody unmarshals a JSON response body into out.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out),
		"undecodable body: %s", rr.Body.String())
}

// createCategoryViaAPI creates a category over HTTP and returns its ID.
func (e *testEnv) createCategoryViaAPI(t *testing.T, token, label string) string {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/categories", token,
		api.CreateCategoryRequest{Label: label})
	require.Equal(t, http.StatusCreated, rr.Code, "create category failed: %s", rr.Body.String())

	var resp api.CategoryResponse
	decodeBody(t, rr, &resp)
	require.NotEmpty(t, resp.CategoryID)
	return resp.CategoryID
}

// createTaskViaAPI creates a task over HTTP and returns its ID.
func (e *testEnv) createTaskViaAPI(t *testing.T, token, categoryID, label string) string {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/tasks", token, api.TaskInput{
		CategoryID:  categoryID,
		Label:       label,
		Description: fmt.Sprintf("description of %s", label),
	})
	require.Equal(t, http.StatusCreated, rr.Code, "create task failed: %s", rr.Body.String())

	var resp api.TaskResponse
	decodeBody(t, rr, &resp)
	require.NotEmpty(t, resp.TaskID)
	return resp.TaskID
}
