package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

// defaultCategoryLabels are the categories every new account starts with.
var defaultCategoryLabels = []string{"ToDo", "In progress", "Completed"}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore     store.UserStore
	categoryStore store.CategoryStore
	sessions      auth.SessionService
	hasher        auth.PasswordHasher
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	categoryStore store.CategoryStore,
	sessions auth.SessionService,
	hasher auth.PasswordHasher,
) *AuthHandler {
	return &AuthHandler{
		userStore:     userStore,
		categoryStore: categoryStore,
		sessions:      sessions,
		hasher:        hasher,
	}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Full account policy checks beyond the struct tags.
	if err := domain.ValidateUsername(req.Username); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid username: "+err.Error())
		return
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		RespondWithError(w, r, http.StatusBadRequest,
			"Invalid password: must be 8 to 72 characters with upper and lower case letters, a digit and one of $ @ !")
		return
	}

	hashedPassword, err := h.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user, err := domain.NewUser(req.Username, hashedPassword)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		slog.Error("failed to create user", "error", err, "username", req.Username)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// New accounts start with a default board. Failure here is logged but
	// does not undo the registration; the user simply starts without the
	// default columns.
	if err := h.createDefaultCategories(r, user); err != nil {
		slog.Error("failed to create default categories",
			"error", err, "user_id", user.ID)
	}

	session, err := h.sessions.StartSession(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to start session")
		return
	}

	setSessionCookie(w, session.Token)
	RespondWithJSON(w, r, http.StatusCreated, UserResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user by username", "error", err, "username", req.Username)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session, err := h.sessions.StartSession(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to start session")
		return
	}

	setSessionCookie(w, session.Token)
	RespondWithJSON(w, r, http.StatusOK, UserResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Logout handles the /auth/logout endpoint. It runs behind the session
// guard, so the token is present; revoking it ends the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.ExtractSessionToken(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.sessions.EndSession(r.Context(), token); err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			RespondWithError(w, r, http.StatusUnauthorized, "Invalid session")
			return
		}
		slog.Error("failed to end session", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to end session")
		return
	}

	clearSessionCookie(w)
	RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// GetUser handles the /user endpoint, returning the authenticated account.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// createDefaultCategories builds the starting board columns for a new user.
func (h *AuthHandler) createDefaultCategories(r *http.Request, user *domain.User) error {
	categories := make([]*domain.Category, 0, len(defaultCategoryLabels))
	for _, label := range defaultCategoryLabels {
		category, err := domain.NewCategory(user.ID, label)
		if err != nil {
			return err
		}
		categories = append(categories, category)
	}
	return h.categoryStore.CreateAll(r.Context(), categories)
}

// setSessionCookie writes the session token as an HTTP-only cookie.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
