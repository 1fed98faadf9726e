package media

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFiles is returned when an upload request carries no files
	ErrNoFiles = errors.New("no files in request")

	// ErrTooManyFiles is returned when a batch exceeds MaxBatchSize
	ErrTooManyFiles = errors.New("too many files in one upload")

	// ErrFileTooLarge is returned when a file exceeds MaxFileSize
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrTypeNotAllowed is returned when a file fails the allow-list check
	ErrTypeNotAllowed = errors.New("file type not allowed")
)

// TransformError reports a fatal processing failure for one file.
// Files written earlier in the same batch stay on disk.
type TransformError struct {
	Filename string
	Err      error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.Filename, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
