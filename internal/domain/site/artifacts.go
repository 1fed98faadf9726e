package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/folio/folio-api/internal/pkg/docstore"
)

// ArtifactStore reads and rewrites the static site's text documents
type ArtifactStore interface {
	ReadText(name string) (string, error)
	WriteText(name, content string) error
}

// FileArtifactStore keeps artifacts as plain files under the site
// directory. Writes go through a temp-file-and-rename cycle so a crash
// mid-write never leaves a truncated page.
type FileArtifactStore struct {
	dir string
}

// NewFileArtifactStore creates the artifact store rooted at dir
func NewFileArtifactStore(dir string) (*FileArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create site directory: %w", err)
	}
	return &FileArtifactStore{dir: dir}, nil
}

func (s *FileArtifactStore) path(name string) (string, error) {
	clean := filepath.Clean(name)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	return filepath.Join(s.dir, clean), nil
}

// ReadText returns an artifact's full content
func (s *FileArtifactStore) ReadText(name string) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrArtifactMissing, name)
		}
		return "", fmt.Errorf("failed to read artifact %s: %w", name, err)
	}
	return string(data), nil
}

// WriteText replaces an artifact's content atomically
func (s *FileArtifactStore) WriteText(name, content string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := docstore.WriteFileAtomic(p, []byte(content)); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return nil
}
