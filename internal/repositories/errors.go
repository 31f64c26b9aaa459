package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup, update or delete matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when an insert or update violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrLockNotAcquired is returned when another request holds the natural-key lock.
	ErrLockNotAcquired = errors.New("lock not acquired")
)
