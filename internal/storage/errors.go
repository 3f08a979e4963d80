package storage

import "errors"

// Errors returned by repositories. Driver errors are translated into these so
// the service layer never inspects pgx or pgconn values.
var (
	// ErrNotFound means no row matched the lookup, including lookups scoped
	// by a parent id that does not own the row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is a unique constraint violation.
	ErrConflict = errors.New("record conflicts with an existing one")
	// ErrForeignKey means the referenced parent row does not exist.
	ErrForeignKey = errors.New("referenced parent record does not exist")
)
