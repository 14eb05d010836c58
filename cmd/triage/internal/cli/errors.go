package cli

import "errors"

// Error definitions for cli package.
var (
	ErrLoadEnvFile = errors.New("failed to load .env file")
)
