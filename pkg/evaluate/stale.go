package evaluate

import (
	"sort"
	"time"

	"github.com/lerenn/issue-triage/pkg/index"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// Placeholders shown for issues outside any project, or without a status.
const (
	StatusNotInProject = "Not in Project"
	StatusNone         = "No Status"
	ProjectNone        = "N/A"
)

// DefaultPausedStatus is used when StaleOptions leaves PausedStatus empty.
const DefaultPausedStatus = "Pause"

// StaleOptions configures the stale evaluator.
type StaleOptions struct {
	// ThresholdDays flags issues inactive for strictly more days.
	ThresholdDays int
	// PausedStatus is the project status collected into the paused list.
	PausedStatus string
}

// StaleRow is an issue with its inactivity.
type StaleRow struct {
	Issue        snapshot.RepoIssue
	Project      string
	Status       string
	DaysInactive int
	LastUpdated  string
}

// StaleResult holds the stale and paused lists. They are independent.
type StaleResult struct {
	Stale         []StaleRow
	Paused        []StaleRow
	Scanned       int
	ThresholdDays int
	PausedStatus  string
}

// Stale flags issues inactive for more than the threshold and collects paused issues.
func Stale(issues []snapshot.RepoIssue, idx *index.Index, now time.Time, opts StaleOptions, diag logger.Diagnostics) StaleResult {
	if opts.PausedStatus == "" {
		opts.PausedStatus = DefaultPausedStatus
	}
	result := StaleResult{
		Scanned:       len(issues),
		ThresholdDays: opts.ThresholdDays,
		PausedStatus:  opts.PausedStatus,
	}

	for _, issue := range issues {
		updated, err := time.Parse(time.RFC3339Nano, issue.UpdatedAt)
		if err != nil {
			diag.Warn("could not parse last update time",
				"url", issue.URL, "value", issue.UpdatedAt)
			continue
		}

		row := StaleRow{
			Issue:        issue,
			Project:      ProjectNone,
			Status:       StatusNotInProject,
			DaysInactive: DaysInactive(updated, now),
			LastUpdated:  lastUpdated(issue.UpdatedAt),
		}
		if metadata, ok := idx.Lookup(issue.URL); ok {
			row.Project = metadata.Project
			row.Status = metadata.Status
			if row.Status == "" {
				row.Status = StatusNone
			}
		}

		if row.Status == opts.PausedStatus {
			result.Paused = append(result.Paused, row)
		}
		if row.DaysInactive > opts.ThresholdDays {
			result.Stale = append(result.Stale, row)
		}
	}

	byInactivity := func(rows []StaleRow) {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].DaysInactive > rows[j].DaysInactive
		})
	}
	byInactivity(result.Stale)
	byInactivity(result.Paused)

	return result
}

func lastUpdated(updatedAt string) string {
	if len(updatedAt) < len(dateLayout) {
		return updatedAt
	}
	return updatedAt[:len(dateLayout)]
}
