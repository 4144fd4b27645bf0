package storage_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tlowell/objstore/storage"
)

func TestDirectoryStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewDirectoryStore(afero.NewMemMapFs(), "/data")

	t.Run("put and get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a", []byte("a")))
		value, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("a"), value)
	})
	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "a"))
		_, err := store.Get(ctx, "a")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})
	t.Run("keys with separators in the filename", func(t *testing.T) {
		key := storage.GenerateObjectKey("album/cover.png")
		require.NoError(t, store.Put(ctx, key, []byte("img")))
		value, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("img"), value)
	})
	t.Run("keys escaping the root are rejected", func(t *testing.T) {
		for _, key := range []string{
			"../outside",
			"/etc/passwd",
			"a/../../outside",
		} {
			err := store.Put(ctx, key, []byte("x"))
			var serr *storage.StorageError
			require.ErrorAs(t, err, &serr, "key %q", key)
			assert.Equal(t, key, serr.Key)
		}
	})
	t.Run("put failures carry the key", func(t *testing.T) {
		readonly := storage.NewDirectoryStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data")
		err := readonly.Put(ctx, "target-key", []byte("x"))
		var serr *storage.StorageError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "put", serr.Op)
		assert.Equal(t, "target-key", serr.Key)
	})
}
