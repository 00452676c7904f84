// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Two backends implement these interfaces: a transient in-memory store
// (internal/platform/memory) and a durable PostgreSQL store
// (internal/platform/postgres). Both must satisfy the conformance suite
// in the storetest subpackage with identical observable behavior.
package store
