package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by id yields nothing.
var ErrNotFound = errors.New("not found")

// ErrCorruptData marks a persisted league blob that could not be decoded.
// The store recovers by resetting to an empty league; callers observe the
// loss through Status.
var ErrCorruptData = errors.New("corrupt league data")

// StorageError wraps a backend read or write failure. Reads are recoverable
// (the store resets and continues); writes are not and surface to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// AsStorageError attempts to unwrap an error into a StorageError.
func AsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
