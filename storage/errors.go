package storage

import "fmt"

// StorageError is any backend failure other than a missing object: network,
// auth, malformed request, or a generic client error. It records the
// operation and key for diagnostics and wraps the underlying cause.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed (key: %s): %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	_, ok := target.(*StorageError)
	return ok
}

func newStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}
