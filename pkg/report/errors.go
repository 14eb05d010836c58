// Package report renders evaluator results as CSV files and Markdown tables.
package report

import "errors"

// Error definitions for report package.
var (
	ErrCSVEncode     = errors.New("failed to encode CSV report")
	ErrMarkdownWrite = errors.New("failed to write Markdown report")
)

// CSV file names written to the output directory.
const (
	MissingInfoFile = "issues_without_info.csv"
	OverdueFile     = "overdue_issues.csv"
	StaleFile       = "stale_issues.csv"
	CandidatesFile  = "project_candidates.csv"
)

// notAvailable replaces a missing status or priority.
const notAvailable = "N/A"
