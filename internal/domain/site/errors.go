package site

import "errors"

var (
	// ErrArtifactMissing signals an index or template document that
	// could not be read for rewriting
	ErrArtifactMissing = errors.New("site artifact not found")
)
