// Package snapshot reads and writes the cached issues and projects data.
package snapshot

import "errors"

// Snapshot file names inside the data directory.
const (
	IssuesFile   = "issues.json"
	ProjectsFile = "projects.json"
	SummaryFile  = "summary.json"
)

// Error definitions for snapshot package.
var (
	ErrIssuesSnapshotNotFound   = errors.New("cached issues data not found, run 'triage collect' first")
	ErrProjectsSnapshotNotFound = errors.New("cached projects data not found, run 'triage collect' first")
	ErrSnapshotMalformed        = errors.New("cached data is malformed")
	ErrSnapshotWrite            = errors.New("failed to write cached data")
)
