//go:build unit

package evaluate

import (
	"testing"

	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverdue(t *testing.T) {
	idx := projectIndex("Bills", map[string]map[string]interface{}{
		"A": {"target completion date": "2024-03-14", "priority": "High"},
		"B": {"due date": "2023-12-01"},
		"C": {"deadline": "2024-03-15"},
		"D": {"target end date": "2024-03-20"},
		"E": {"target completion date": "someday"},
		"F": {"status": "Todo"},
	})

	issues := []snapshot.RepoIssue{
		repoIssue("o/bills", 1, "A", testNow),
		repoIssue("o/census", 2, "B", testNow),
		repoIssue("o/bills", 3, "C", testNow),
		repoIssue("o/bills", 4, "D", testNow),
		repoIssue("o/bills", 5, "E", testNow),
		repoIssue("o/bills", 6, "F", testNow),
		repoIssue("o/bills", 7, "G", testNow),
	}

	diag := logger.NewCollector(nil)
	result := Overdue(issues, idx, testNow, diag)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, 2, result.Rows[0].Issue.Number)
	assert.Equal(t, 105, result.Rows[0].DaysOverdue)
	assert.Equal(t, 1, result.Rows[1].Issue.Number)
	assert.Equal(t, 1, result.Rows[1].DaysOverdue)
	assert.Equal(t, "2024-03-14", result.Rows[1].TargetDate)

	assert.Equal(t, 7, result.Scanned)
	assert.Equal(t, 5, result.WithTargetDate)

	require.Len(t, diag.Warnings(), 1)
	assert.Equal(t, "someday", diag.Warnings()[0].Fields["value"])

	assert.Equal(t, []Count{
		{Label: "1-7 days", Count: 1},
		{Label: "8-30 days", Count: 0},
		{Label: "31-90 days", Count: 0},
		{Label: "90+ days", Count: 1},
	}, result.ByPeriod())
	assert.Equal(t, []Count{{Label: "census", Count: 1}, {Label: "bills", Count: 1}}, result.ByRepository())
	assert.Equal(t, []Count{{Label: NoPriority, Count: 1}, {Label: "High", Count: 1}}, result.ByPriority())
}

func TestOverdue_DaysNeverNegative(t *testing.T) {
	idx := projectIndex("Bills", map[string]map[string]interface{}{
		"A": {"deadline": "2030-01-01"},
	})

	result := Overdue([]snapshot.RepoIssue{repoIssue("o/bills", 1, "A", testNow)}, idx, testNow, logger.NewCollector(nil))
	assert.Empty(t, result.Rows)
	assert.Equal(t, 1, result.WithTargetDate)
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "1-7 days", Period(1))
	assert.Equal(t, "1-7 days", Period(7))
	assert.Equal(t, "8-30 days", Period(8))
	assert.Equal(t, "8-30 days", Period(30))
	assert.Equal(t, "31-90 days", Period(31))
	assert.Equal(t, "31-90 days", Period(90))
	assert.Equal(t, "90+ days", Period(91))
}

func TestOverdue_ByRepository_SortedByCount(t *testing.T) {
	result := OverdueResult{Rows: []OverdueRow{
		{Issue: snapshot.RepoIssue{Repository: "o/a"}, DaysOverdue: 3},
		{Issue: snapshot.RepoIssue{Repository: "o/b"}, DaysOverdue: 2},
		{Issue: snapshot.RepoIssue{Repository: "o/b"}, DaysOverdue: 1},
	}}

	assert.Equal(t, []Count{{Label: "b", Count: 2}, {Label: "a", Count: 1}}, result.ByRepository())
}
