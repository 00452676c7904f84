// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces.
//
// Constraint violations are translated into the same store error kinds
// the in-memory backend produces, so callers stay backend-agnostic.
// Multi-step writes (category-ownership check before a task insert) run
// inside a single transaction to close the check-then-act race.
package postgres
