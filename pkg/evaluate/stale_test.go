//go:build unit

package evaluate

import (
	"testing"
	"time"

	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staleOpts = StaleOptions{ThresholdDays: 5, PausedStatus: "Pause"}

func TestStale_Boundary(t *testing.T) {
	issues := []snapshot.RepoIssue{
		repoIssue("o/bills", 1, "A", testNow.AddDate(0, 0, -6)),
		repoIssue("o/bills", 2, "B", testNow.Add(-5*24*time.Hour)),
	}

	result := Stale(issues, emptyIndex(), testNow, staleOpts, logger.NewCollector(nil))
	require.Len(t, result.Stale, 1)
	assert.Equal(t, 1, result.Stale[0].Issue.Number)
	assert.Equal(t, 6, result.Stale[0].DaysInactive)
	assert.Equal(t, StatusNotInProject, result.Stale[0].Status)
	assert.Equal(t, ProjectNone, result.Stale[0].Project)
	assert.Empty(t, result.Paused)
}

func TestStale_PausedIsIndependent(t *testing.T) {
	idx := projectIndex("Bills", map[string]map[string]interface{}{
		"A": {"status": "Pause"},
		"B": {"status": "Pause"},
		"C": {},
	})

	issues := []snapshot.RepoIssue{
		repoIssue("o/bills", 1, "A", testNow.AddDate(0, 0, -1)),
		repoIssue("o/bills", 2, "B", testNow.AddDate(0, 0, -20)),
		repoIssue("o/bills", 3, "C", testNow.AddDate(0, 0, -8)),
	}

	result := Stale(issues, idx, testNow, staleOpts, logger.NewCollector(nil))

	require.Len(t, result.Paused, 2)
	assert.Equal(t, 2, result.Paused[0].Issue.Number)
	assert.Equal(t, 1, result.Paused[1].Issue.Number)

	require.Len(t, result.Stale, 2)
	assert.Equal(t, 2, result.Stale[0].Issue.Number)
	assert.Equal(t, 3, result.Stale[1].Issue.Number)
	assert.Equal(t, StatusNone, result.Stale[1].Status)
	assert.Equal(t, "Bills", result.Stale[1].Project)
}

func TestStale_UnparseableUpdatedAt(t *testing.T) {
	issue := repoIssue("o/bills", 1, "A", testNow)
	issue.UpdatedAt = "yesterday"

	diag := logger.NewCollector(nil)
	result := Stale([]snapshot.RepoIssue{issue}, emptyIndex(), testNow, staleOpts, diag)

	assert.Empty(t, result.Stale)
	assert.Len(t, diag.Warnings(), 1)
}

func TestStale_LastUpdatedAndDefaults(t *testing.T) {
	issue := repoIssue("o/bills", 1, "A", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	result := Stale([]snapshot.RepoIssue{issue}, emptyIndex(), testNow, StaleOptions{ThresholdDays: 5}, logger.NewCollector(nil))
	require.Len(t, result.Stale, 1)
	assert.Equal(t, "2024-03-01", result.Stale[0].LastUpdated)
	assert.Equal(t, DefaultPausedStatus, result.PausedStatus)
}
