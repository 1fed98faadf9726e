package project

import "errors"

var (
	// ErrProjectNotFound is returned when a project id is unknown
	ErrProjectNotFound = errors.New("project not found")
)
