// Package gh wraps the GitHub CLI used to collect tracker data and add project items.
package gh

import "errors"

// Error definitions for gh package.
var (
	ErrGHNotInstalled     = errors.New("gh CLI not found, install it from https://cli.github.com")
	ErrGHNotAuthenticated = errors.New("gh CLI not authenticated, run 'gh auth login'")
	ErrCommandFailed      = errors.New("gh command failed")
	ErrUnexpectedOutput   = errors.New("unexpected gh output")
)
