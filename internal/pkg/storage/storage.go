package storage

import (
	"context"
	"io"
	"time"
)

// Storage defines the minimal interface for media storage backends.
// Intentionally simple: put a file, read it back, delete it, get its URL.
type Storage interface {
	// Put stores a file under the given key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a file by key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by key. Returns nil if the file doesn't exist.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// List returns stored files whose keys start with prefix.
	List(ctx context.Context, prefix string) ([]FileInfo, error)

	// GetURL returns the public URL for a key.
	GetURL(key string) string
}

// FileInfo describes one stored file
type FileInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	LastModified time.Time `json:"last_modified"`
}

// Config holds backend selection and credentials
type Config struct {
	Backend string // "local" or "s3"

	// Local backend
	BasePath string
	BaseURL  string

	// S3 backend (AWS S3 or any S3-compatible endpoint)
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
}

// New creates the storage backend selected by cfg.Backend
func New(cfg Config) (Storage, error) {
	if cfg.Backend == "s3" {
		return NewS3Storage(cfg)
	}
	return NewLocalStorage(cfg.BasePath, cfg.BaseURL)
}
