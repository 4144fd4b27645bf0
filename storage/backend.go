package storage

import "context"

/*
Backend is the caller-facing layer over a Provider. It owns key generation
and runs the lifecycle hooks at fixed points in each operation's sequence:
Put transfers the object, then runs PostPut; Delete removes it, then runs
PostDelete. Nothing here is transactional. A hook failure after a successful
transfer propagates to the caller with the object already in the store, so
treat a PostPut error as "stored, side effect incomplete" rather than as a
failed put.
*/

////////////////////////////////////////////////////////////////////////////////

// Hooks are optional extension points invoked after the corresponding
// transfer has completed. Nil fields are skipped. Typical uses are
// write-through cache population and metadata indexing.
type Hooks struct {
	PostPut    func(ctx context.Context, key string) error
	PostDelete func(ctx context.Context, key string) error
}

// Backend stores and retrieves blobs through a Provider under the shared key
// policy. It holds no per-object state; the key returned by PutObject is the
// only handle, and callers must retain it.
type Backend struct {
	provider Provider
	hooks    Hooks
	keyfn    func(filename string) string
}

// Option configures a Backend.
type Option func(*Backend)

// WithHooks installs lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(b *Backend) {
		b.hooks = h
	}
}

// WithKeyFunc overrides the key generation policy. The replacement must
// preserve uniqueness across calls; reusing keys silently overwrites
// objects.
func WithKeyFunc(fn func(filename string) string) Option {
	return func(b *Backend) {
		b.keyfn = fn
	}
}

// NewBackend returns a Backend over the supplied provider.
func NewBackend(provider Provider, opts ...Option) *Backend {
	b := &Backend{
		provider: provider,
		keyfn:    GenerateObjectKey,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetObject retrieves the payload stored under key. Returns
// ErrObjectNotFound if no object exists for key, or a StorageError for any
// other backend failure.
func (b *Backend) GetObject(ctx context.Context, key string) ([]byte, error) {
	return b.provider.Get(ctx, key)
}

// PutObject stores data under a freshly generated key and returns the key.
// If the post-put hook fails, the object has already been stored: the key is
// returned alongside the error so the caller still holds the handle.
func (b *Backend) PutObject(ctx context.Context, data []byte, filename string) (string, error) {
	key := b.keyfn(filename)
	if err := b.provider.Put(ctx, key, data); err != nil {
		return "", err
	}
	if b.hooks.PostPut != nil {
		if err := b.hooks.PostPut(ctx, key); err != nil {
			return key, err
		}
	}
	return key, nil
}

// DeleteObject removes the object stored under key, then runs the
// post-delete hook. Deleting a missing key succeeds. As with PutObject, a
// hook failure arrives after the delete has already happened.
func (b *Backend) DeleteObject(ctx context.Context, key string) error {
	if err := b.provider.Delete(ctx, key); err != nil {
		return err
	}
	if b.hooks.PostDelete != nil {
		return b.hooks.PostDelete(ctx, key)
	}
	return nil
}
