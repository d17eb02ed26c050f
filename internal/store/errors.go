package store

import "errors"

var (
	// ErrNotFound is returned when no document matches the requested identifier.
	ErrNotFound = errors.New("recipe not found")
	// ErrConflict is returned when a write carries a stale or missing revision.
	ErrConflict = errors.New("revision conflict")
	// ErrLocked is returned when another process holds the edit lock.
	ErrLocked = errors.New("edit lock held by another process")
)
