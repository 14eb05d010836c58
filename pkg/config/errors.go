// Package config provides configuration management functionality for the triage application.
package config

import "errors"

// Default values applied when the configuration leaves them unset.
const (
	DefaultPausedStatus = "Pause"
	DefaultFetchLimit   = 1000
)

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigNotFound  = errors.New("configuration not found. Run 'triage init' to create one")

	// Configuration validation errors.
	ErrOrganizationEmpty     = errors.New("organization cannot be empty")
	ErrDataDirEmpty          = errors.New("data_dir cannot be empty")
	ErrOutputDirEmpty        = errors.New("output_dir cannot be empty")
	ErrInvalidStaleThreshold = errors.New("stale_threshold_days cannot be negative")
	ErrInvalidFetchLimit     = errors.New("fetch_limit cannot be negative")
	ErrInvalidRepositoryName = errors.New("repository must be in owner/name form")
)
