package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"
)

// LocalStorage stores objects on an afero filesystem rooted at the media directory
type LocalStorage struct {
	fs afero.Fs
}

// NewLocalStorage creates a storage over fs
func NewLocalStorage(fs afero.Fs) *LocalStorage {
	return &LocalStorage{fs: fs}
}

// Save writes r under key, creating parent directories
func (s *LocalStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := s.fs.OpenFile(key, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(key)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// Open returns a reader for key
func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := s.fs.Open(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Delete removes key; a missing object is not an error
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := s.fs.Remove(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
