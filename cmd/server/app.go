package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/platform/memory"
	"github.com/taskboard/taskboard-api/internal/platform/postgres"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB // nil when the in-memory backend is selected

	// Stores (using interfaces for proper abstraction)
	userStore     store.UserStore
	sessionStore  store.SessionStore
	categoryStore store.CategoryStore
	taskStore     store.TaskStore

	// Service interfaces
	sessions auth.SessionService
	hasher   auth.PasswordHasher
}

// newApplication creates a new application instance with all dependencies
// initialized. The configured database URL selects the backend: a
// PostgreSQL URL wires the durable stores, an empty URL wires the
// transient in-memory stores.
func newApplication(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: appLogger,
	}

	if cfg.Database.URL != "" {
		db, err := setupAppDatabase(ctx, cfg, appLogger)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.userStore = postgres.NewUserStore(db)
		app.sessionStore = postgres.NewSessionStore(db)
		app.categoryStore = postgres.NewCategoryStore(db)
		app.taskStore = postgres.NewTaskStore(db)
		appLogger.Info("Using PostgreSQL backend")
	} else {
		mdb := memory.NewDB()
		app.userStore = memory.NewUserStore(mdb)
		app.sessionStore = memory.NewSessionStore(mdb)
		app.categoryStore = memory.NewCategoryStore(mdb)
		app.taskStore = memory.NewTaskStore(mdb)
		appLogger.Warn("Using in-memory backend; all data is lost on restart")
	}

	app.sessions = auth.NewSessionService(app.sessionStore)
	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	appLogger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
