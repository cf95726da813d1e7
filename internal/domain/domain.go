package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when the requested row is absent.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConflict is returned by conditional writes when the row no longer
	// matches the state the caller read.
	ErrConflict = errors.New("record changed concurrently")
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID    uint
	Email string
	Role  string
}
