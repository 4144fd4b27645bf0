package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tlowell/objstore/storage"
)

func TestMemstore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
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
	t.Run("buffers do not alias the store", func(t *testing.T) {
		payload := []byte("original")
		require.NoError(t, store.Put(ctx, "b", payload))
		payload[0] = 'X'
		value, err := store.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), value)

		value[0] = 'Y'
		again, err := store.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), again)
	})
}
