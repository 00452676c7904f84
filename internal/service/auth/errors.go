package auth

import "errors"

// Common authentication service errors
var (
	// ErrUnauthorized indicates the presented session token is missing,
	// malformed, or does not resolve to an active session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials indicates a login attempt with an unknown
	// username or a wrong password. The two cases are deliberately not
	// distinguishable by callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
