package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/service/auth"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session"

// SessionMiddleware provides session-token authentication for routes.
// It is the single choke point between a request and the stores: every
// owner-scoped operation runs behind it, and handlers must use only the
// user ID it binds into the context.
type SessionMiddleware struct {
	sessions auth.SessionService
}

// NewSessionMiddleware creates a new SessionMiddleware with the given dependencies.
func NewSessionMiddleware(sessions auth.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Authenticate resolves the session token from the request's credential
// carrier and adds the bound user ID to the request context. Requests
// without a resolvable token are rejected with 401 before any domain
// data is touched.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ExtractSessionToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		userID, err := m.sessions.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid session")
				return
			}
			slog.Error("failed to resolve session", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractSessionToken reads the session token from the request: the
// session cookie first, then an Authorization bearer header. Returns
// false when neither carrier holds a token.
func ExtractSessionToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
