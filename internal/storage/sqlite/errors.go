// ABOUTME: Error taxonomy for the persistent store
// ABOUTME: Sentinels are classified by callers with errors.Is
package sqlite

import (
	"errors"
	"strings"
)

var (
	// ErrStoreUnavailable means the store could not be opened, migrated, or
	// deleted. Surfaced as a blocking initialization error, never retried.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDuplicateKey means a batch insert collided with existing rows. Under
	// the seed-once invariant this is an invariant violation.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound means a primary-key lookup matched no row.
	ErrNotFound = errors.New("not found")
)

// isUniqueViolation matches the UNIQUE constraint error text produced by
// modernc.org/sqlite.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
