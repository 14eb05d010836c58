package fs

import "errors"

// Error definitions for fs package.
var (
	// Path resolution errors.
	ErrPathResolution = errors.New("path resolution failed")

	// Atomic write errors.
	ErrWriteFailed = errors.New("atomic write failed")
)
