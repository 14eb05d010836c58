// Package triage provides the triage operations over a cached tracker snapshot.
package triage

import "errors"

// Error definitions for triage package.
var (
	// Initialization errors.
	ErrAlreadyInitialized = errors.New("configuration already exists, use --force to overwrite it")

	// Setup errors.
	ErrInvalidDependencies = errors.New("invalid dependencies")
	ErrLoadConfig          = errors.New("failed to load configuration")

	// Output errors.
	ErrWriteReport = errors.New("failed to write report")
)
