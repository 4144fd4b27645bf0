package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

/*
DirectoryStore stores objects as files in a local directory. It is meant for
development and single-node deployments, not for production object storage.
The filesystem is abstracted behind afero so tests can run against an
in-memory filesystem.
*/

////////////////////////////////////////////////////////////////////////////////

type DirectoryStore struct {
	fs   afero.Fs
	root string
}

// NewDirectoryStore creates a DirectoryStore rooted at root on the given
// filesystem. Use afero.NewOsFs() for real disk.
func NewDirectoryStore(fs afero.Fs, root string) *DirectoryStore {
	return &DirectoryStore{fs: fs, root: root}
}

// Get retrieves an object from the directory.
func (d *DirectoryStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := d.objectPath(key)
	if err != nil {
		return nil, newStorageError("get", key, err)
	}
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, newStorageError("get", key, err)
	}
	return data, nil
}

// Put stores an object in the directory.
func (d *DirectoryStore) Put(_ context.Context, key string, data []byte) error {
	path, err := d.objectPath(key)
	if err != nil {
		return newStorageError("put", key, err)
	}
	// Filenames may contain separators, so the parent may not exist yet.
	if err := d.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newStorageError("put", key, err)
	}
	if err := afero.WriteFile(d.fs, path, data, 0o600); err != nil {
		return newStorageError("put", key, err)
	}
	return nil
}

// Delete removes an object from the directory. Deleting a missing key
// returns nil for conformance to the S3 API.
func (d *DirectoryStore) Delete(_ context.Context, key string) error {
	path, err := d.objectPath(key)
	if err != nil {
		return newStorageError("delete", key, err)
	}
	if err := d.fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return newStorageError("delete", key, err)
	}
	return nil
}

// objectPath maps a key to a path under the root. Filenames are embedded in
// keys verbatim, so a hostile key could otherwise walk out of the root.
func (d *DirectoryStore) objectPath(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid key path: %q", key)
	}
	return filepath.Join(d.root, cleaned), nil
}

func (d *DirectoryStore) String() string {
	return fmt.Sprintf("directory(%s)", d.root)
}
