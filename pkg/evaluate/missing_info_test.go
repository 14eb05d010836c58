//go:build unit

package evaluate

import (
	"testing"

	"github.com/lerenn/issue-triage/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingInfo_NotInProject(t *testing.T) {
	result := MissingInfo([]snapshot.RepoIssue{
		repoIssue("MaxMillerLab/bills", 6, "V", testNow, "alice"),
		repoIssue("MaxMillerLab/bills", 5, "U", testNow.AddDate(0, 0, -10)),
	}, emptyIndex())

	require.Len(t, result.Rows, 2)
	assert.Equal(t, 5, result.Rows[0].Issue.Number)
	assert.Equal(t, []string{ReasonNoProject, ReasonNoAssignee}, result.Rows[0].Reasons)
	assert.Equal(t, []string{ReasonNoProject}, result.Rows[1].Reasons)
	assert.Equal(t, 2, result.Scanned)
}

func TestMissingInfo_CompleteIssueNotFlagged(t *testing.T) {
	idx := projectIndex("Bills", map[string]map[string]interface{}{
		"U": {
			"status":                 "Todo",
			"priority":               "High",
			"start date":             "2024-01-01",
			"target completion date": "2024-06-01",
		},
	})

	result := MissingInfo([]snapshot.RepoIssue{repoIssue("o/bills", 1, "U", testNow, "alice")}, idx)
	assert.Empty(t, result.Rows)
	assert.Equal(t, 1, result.Scanned)
}

func TestMissingInfo_ReasonOrder(t *testing.T) {
	idx := projectIndex("Bills", map[string]map[string]interface{}{"U": {}})

	result := MissingInfo([]snapshot.RepoIssue{repoIssue("o/bills", 1, "U", testNow)}, idx)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{
		ReasonNoPriority,
		ReasonNoStatus,
		ReasonNoAssignee,
		ReasonNoStartDate,
		ReasonNoTargetDate,
	}, result.Rows[0].Reasons)
}

func TestMissingInfo_StableOrderAndCounts(t *testing.T) {
	idx := projectIndex("Bills", map[string]map[string]interface{}{
		"A": {"status": "Todo", "priority": "High", "start date": "2024-01-01"},
		"B": {"status": "Todo", "priority": "High", "start date": "2024-01-01"},
	})

	issues := []snapshot.RepoIssue{
		repoIssue("o/bills", 1, "A", testNow, "alice"),
		repoIssue("o/bills", 2, "B", testNow, "bob"),
		repoIssue("o/bills", 3, "C", testNow),
	}

	first := MissingInfo(issues, idx)
	second := MissingInfo(issues, idx)
	assert.Equal(t, first, second)

	require.Len(t, first.Rows, 3)
	assert.Equal(t, 3, first.Rows[0].Issue.Number)
	assert.Equal(t, 1, first.Rows[1].Issue.Number)
	assert.Equal(t, 2, first.Rows[2].Issue.Number)

	assert.Equal(t, []Count{
		{Label: ReasonNoTargetDate, Count: 2},
		{Label: ReasonNoProject, Count: 1},
		{Label: ReasonNoAssignee, Count: 1},
	}, first.ReasonCounts())
}
