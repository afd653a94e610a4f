package kvstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	apperrors "travelbook/pkg/errors"
)

// FileStore is a Store that keeps one file per key under a base
// directory. Keys are hashed into filenames, so any string is a valid
// key regardless of the underlying filesystem.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the base directory if needed and returns a
// store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewStorageError("create storage directory", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get implements Store
func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStorageError("read key", err)
	}
	return value, true, nil
}

// Set implements Store. The value is written to a temp file first and
// renamed into place so readers never see a partial write.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return apperrors.NewStorageError("write key", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return apperrors.NewStorageError("write key", err)
	}
	return nil
}

// Delete implements Store
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.NewStorageError("delete key", err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}
