package storage

import (
	"context"
	"errors"
)

/*
Package storage is a thin abstraction over object storage for the image
pipeline. A Provider supplies raw get/put/delete against a single namespace
(bucket, directory, or map). The Backend type layers the key generation
policy and lifecycle hooks on top, and is what application code should hold.

Every operation takes a context and blocks only the calling goroutine. The
layer performs no retries: failures from the underlying client are translated
into the error taxonomy and returned immediately, so retry policy stays with
the caller. Note that a retried PutObject generates a fresh key rather than
retrying the old one.
*/

////////////////////////////////////////////////////////////////////////////////

// ErrObjectNotFound is returned by Get when no object exists for the key.
// Delete never returns it: deleting a missing key succeeds, matching the S3
// API.
var ErrObjectNotFound = errors.New("object not found")

// Provider is the minimal set of operations a concrete object store must
// support. Implementations must be safe for concurrent use and must map
// client-specific failures onto ErrObjectNotFound or StorageError.
type Provider interface {
	// Get reads the entire object for key into memory. The returned buffer
	// is owned by the caller; the provider keeps no reference to it.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put uploads data under key in a single request. The full payload is
	// buffered in memory, which bounds object size to available memory and
	// one request's limits.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes the object for key. Deleting a key that does not exist
	// is not an error.
	Delete(ctx context.Context, key string) error
}
