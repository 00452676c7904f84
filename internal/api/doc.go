// Package api implements the HTTP handlers for the task board service.
// Handlers are a thin shell: they decode and validate requests, call the
// stores and services with the authenticated user ID bound by the access
// guard middleware, and map errors to HTTP status codes.
package api
