// Package docstore provides a durable key-value document store: whole named
// documents are read and rewritten in full, never patched in place.
package docstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotExist is returned when a document is absent
var ErrNotExist = errors.New("document does not exist")

// Store is the minimal contract for durable documents
type Store interface {
	// Read returns the full document contents, or ErrNotExist when absent.
	Read(name string) ([]byte, error)

	// Write replaces the full document contents.
	Write(name string, data []byte) error
}

// FileStore keeps each document as a single file under a base directory
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed document store rooted at dir
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Read returns the document contents, or ErrNotExist when absent
func (s *FileStore) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to read document %s: %w", name, err)
	}
	return data, nil
}

// Write replaces the document atomically
func (s *FileStore) Write(name string, data []byte) error {
	return WriteFileAtomic(filepath.Join(s.dir, name), data)
}

// WriteFileAtomic writes data to path via a same-directory temp file and
// rename, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
