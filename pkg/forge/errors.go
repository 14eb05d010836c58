package forge

import "errors"

// Forge-specific errors.
var (
	ErrUnsupportedForge   = errors.New("unsupported issue source")
	ErrInvalidRepository  = errors.New("invalid repository name, expected owner/name")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrRateLimited        = errors.New("rate limited by forge API")
	ErrUnauthorized       = errors.New("unauthorized access to forge API")
)
