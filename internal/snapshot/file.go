package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the snapshot as a single file on disk.
// Writes go to a temp file in the same directory followed by a rename, so a
// crash mid-write never leaves a truncated snapshot behind.
type FileStore struct {
	path string
}

// NewFileStore constructs a FileStore writing to path. The parent directory
// is created on the first Save if it does not exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. Returns ErrNotFound if it does not exist.
func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot.FileStore.Load: %w", err)
	}
	return data, nil
}

// Save atomically overwrites the snapshot file with data.
func (s *FileStore) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot.FileStore.Save: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("snapshot.FileStore.Save: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("snapshot.FileStore.Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("snapshot.FileStore.Save: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("snapshot.FileStore.Save: %w", err)
	}
	return nil
}
