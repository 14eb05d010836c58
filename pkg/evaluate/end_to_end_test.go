//go:build unit

package evaluate

import (
	"testing"

	"github.com/lerenn/issue-triage/pkg/index"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/reconcile"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluators_BillsExample(t *testing.T) {
	snap := &snapshot.Snapshot{
		Issues: snapshot.IssuesDocument{Repositories: map[string][]snapshot.Issue{
			"MaxMillerLab/bills": {repoIssue("MaxMillerLab/bills", 5, "U", testNow.AddDate(0, 0, -10)).Issue},
		}},
		Projects: snapshot.ProjectsDocument{
			Projects:     []snapshot.Project{{Number: 3, Title: "Bill Probability and Impact"}},
			ProjectItems: map[string]snapshot.ProjectItems{"3": {Title: "Bill Probability and Impact"}},
		},
	}

	diag := logger.NewCollector(nil)
	idx := index.Build(snap.Projects, diag)
	issues := snap.AllIssues(nil)

	missing := MissingInfo(issues, idx)
	require.Len(t, missing.Rows, 1)
	assert.Equal(t, []string{ReasonNoProject, ReasonNoAssignee}, missing.Rows[0].Reasons)

	stale := Stale(issues, idx, testNow, staleOpts, diag)
	require.Len(t, stale.Stale, 1)
	assert.Equal(t, 10, stale.Stale[0].DaysInactive)

	candidates := reconcile.FindCandidates(snap, map[string]string{"bills": "Bill Probability and Impact"}, "", nil, diag)
	require.Len(t, candidates, 1)
	assert.Equal(t, 5, candidates[0].Number)
	assert.Equal(t, 3, candidates[0].ProjectNumber)

	assert.Empty(t, diag.Warnings())
}

func TestEvaluators_Idempotent(t *testing.T) {
	tenDaysAgo := testNow.AddDate(0, 0, -10)
	snap := &snapshot.Snapshot{
		Issues: snapshot.IssuesDocument{Repositories: map[string][]snapshot.Issue{
			"MaxMillerLab/fara": {
				repoIssue("MaxMillerLab/fara", 3, "f3", tenDaysAgo).Issue,
				repoIssue("MaxMillerLab/fara", 4, "f4", testNow.AddDate(0, 0, -2)).Issue,
			},
			"MaxMillerLab/bills": {
				repoIssue("MaxMillerLab/bills", 1, "b1", tenDaysAgo, "alice").Issue,
				repoIssue("MaxMillerLab/bills", 2, "b2", tenDaysAgo).Issue,
			},
			"MaxMillerLab/census": {
				repoIssue("MaxMillerLab/census", 8, "c8", tenDaysAgo).Issue,
			},
		}},
		Projects: snapshot.ProjectsDocument{
			Projects: []snapshot.Project{{Number: 1, Title: "Board"}},
			ProjectItems: map[string]snapshot.ProjectItems{"1": {Title: "Board", Items: []snapshot.ProjectItem{
				{
					Content: snapshot.ItemContent{Type: snapshot.ContentTypeIssue, URL: "b1"},
					Fields:  map[string]interface{}{"status": "In Progress", "priority": "P1", "target completion date": "2024-03-01"},
				},
				{
					Content: snapshot.ItemContent{Type: snapshot.ContentTypeIssue, URL: "f3"},
					Fields:  map[string]interface{}{"status": "Pause", "due date": "2024-03-01"},
				},
				{
					Content: snapshot.ItemContent{Type: snapshot.ContentTypeIssue, URL: "c8"},
					Fields:  map[string]interface{}{"target end date": "2024-03-01"},
				},
			}}},
		},
	}

	type run struct {
		missing MissingInfoResult
		overdue OverdueResult
		stale   StaleResult
	}
	evaluateAll := func() run {
		diag := logger.NewCollector(nil)
		idx := index.Build(snap.Projects, diag)
		issues := snap.AllIssues([]string{"MaxMillerLab/fara"})
		return run{
			missing: MissingInfo(issues, idx),
			overdue: Overdue(issues, idx, testNow, diag),
			stale:   Stale(issues, idx, testNow, staleOpts, diag),
		}
	}

	first := evaluateAll()
	second := evaluateAll()
	assert.Equal(t, first, second)

	// Equal days inactive keep the repository order: fara first, then the rest sorted.
	var staleNumbers []int
	for _, row := range first.stale.Stale {
		staleNumbers = append(staleNumbers, row.Issue.Number)
	}
	assert.Equal(t, []int{3, 1, 2, 8}, staleNumbers)

	var overdueNumbers []int
	for _, row := range first.overdue.Rows {
		overdueNumbers = append(overdueNumbers, row.Issue.Number)
	}
	assert.Equal(t, []int{3, 1, 8}, overdueNumbers)
}
