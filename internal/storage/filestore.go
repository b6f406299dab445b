package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// PhotoStore persists uploaded evidence photos and returns their path.
type PhotoStore interface {
	Save(name string, r io.Reader) (string, error)
}

// FileStore writes photos under a fixed directory, prefixing the original
// filename with the current unix timestamp. Not collision-proof for rapid
// concurrent uploads with identical filenames.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the photo to disk and returns its path.
func (s *FileStore) Save(name string, r io.Reader) (string, error) {
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(name))
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write photo file: %w", err)
	}
	return path, nil
}
