package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskboard/taskboard-api/internal/api"
	authmiddleware "github.com/taskboard/taskboard-api/internal/api/middleware"
)

// setupRouter configures the HTTP routes and middleware.
func (app *application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Set up standard middleware stack
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(authmiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.categoryStore, app.sessions, app.hasher)
	taskHandler := api.NewTaskHandler(app.taskStore, app.categoryStore)
	categoryHandler := api.NewCategoryHandler(app.categoryStore)
	sessionMiddleware := authmiddleware.NewSessionMiddleware(app.sessions)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
