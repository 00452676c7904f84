// Package memory provides a transient, process-local implementation of
// the store interfaces backed by mutex-guarded maps.
//
// It is the default backend when no database URL is configured and the
// backend the test suite runs against. All data is lost on process
// restart; that is an advertised property of this backend, not a bug.
package memory
