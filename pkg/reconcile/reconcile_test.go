//go:build unit

package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/issue-triage/pkg/gh/mocks"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Issues: snapshot.IssuesDocument{Repositories: map[string][]snapshot.Issue{
			"MaxMillerLab/bills": {
				{Number: 9, Title: "Nine", URL: "https://github.com/MaxMillerLab/bills/issues/9"},
				{Number: 5, Title: "Five", URL: "https://github.com/MaxMillerLab/bills/issues/5"},
				{Number: 7, Title: "Seven", URL: "https://github.com/MaxMillerLab/bills/issues/7"},
			},
			"MaxMillerLab/census": {
				{Number: 1, Title: "One", URL: "https://github.com/MaxMillerLab/census/issues/1"},
			},
			"MaxMillerLab/referee": {
				{Number: 2, Title: "Two", URL: "https://github.com/MaxMillerLab/referee/issues/2"},
			},
			"MaxMillerLab/health": {
				{Number: 3, Title: "Three", URL: "https://github.com/MaxMillerLab/health/issues/3"},
			},
		}},
		Projects: snapshot.ProjectsDocument{
			Projects: []snapshot.Project{
				{Number: 3, Title: "Bill Probability and Impact", ID: "PVT_3"},
				{Number: 4, Title: "Census"},
			},
			ProjectItems: map[string]snapshot.ProjectItems{
				"3": {Items: []snapshot.ProjectItem{
					{Content: snapshot.ItemContent{Type: snapshot.ContentTypeIssue, URL: "https://github.com/MaxMillerLab/bills/issues/7"}},
					{Content: snapshot.ItemContent{Type: "PullRequest", URL: "https://github.com/MaxMillerLab/bills/issues/9"}},
				}},
			},
		},
	}
}

var testMapping = map[string]string{
	"bills":  "Bill Probability and Impact",
	"census": "Census",
	"health": "Health",
}

func TestIssuesAlreadyInProject(t *testing.T) {
	urls := IssuesAlreadyInProject(testSnapshot().Projects, 3)
	assert.Equal(t, map[string]bool{"https://github.com/MaxMillerLab/bills/issues/7": true}, urls)
	assert.Empty(t, IssuesAlreadyInProject(testSnapshot().Projects, 4))
}

func TestFindCandidates(t *testing.T) {
	diag := logger.NewCollector(nil)
	candidates := FindCandidates(testSnapshot(), testMapping, "", nil, diag)

	require.Len(t, candidates, 3)
	assert.Equal(t, "bills", candidates[0].Repository)
	assert.Equal(t, 5, candidates[0].Number)
	assert.Equal(t, 3, candidates[0].ProjectNumber)
	assert.Equal(t, "PVT_3", candidates[0].ProjectID)
	assert.Equal(t, 9, candidates[1].Number)
	assert.Equal(t, "census", candidates[2].Repository)
	assert.Equal(t, 4, candidates[2].ProjectNumber)

	warnings := diag.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "project not found for repository", warnings[0].Message)
	assert.Equal(t, "Health", warnings[0].Fields["project"])
	assert.Equal(t, "no project mapping found for repository", warnings[1].Message)
	assert.Equal(t, "referee", warnings[1].Fields["repository"])
}

func TestFindCandidates_Filter(t *testing.T) {
	diag := logger.NewCollector(nil)
	candidates := FindCandidates(testSnapshot(), testMapping, "census", nil, diag)

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Number)
	assert.Empty(t, diag.Warnings())
}

func TestApply_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := mocks.NewMockGH(ctrl)

	candidates := FindCandidates(testSnapshot(), testMapping, "", nil, logger.NewCollector(nil))
	result := Apply(context.Background(), mockGH, "MaxMillerLab", candidates, true, logger.NewNoopLogger())

	assert.True(t, result.DryRun)
	assert.Len(t, result.Candidates, 3)
	assert.Zero(t, result.Attempted)
	assert.Zero(t, result.Succeeded)
}

func TestApply_Execute_RecordsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := mocks.NewMockGH(ctrl)

	candidates := FindCandidates(testSnapshot(), testMapping, "", nil, logger.NewCollector(nil))

	gomock.InOrder(
		mockGH.EXPECT().ProjectItemAdd(gomock.Any(), 3, "MaxMillerLab", "https://github.com/MaxMillerLab/bills/issues/5").Return(nil),
		mockGH.EXPECT().ProjectItemAdd(gomock.Any(), 3, "MaxMillerLab", "https://github.com/MaxMillerLab/bills/issues/9").Return(errors.New("exit status 1")),
		mockGH.EXPECT().ProjectItemAdd(gomock.Any(), 4, "MaxMillerLab", "https://github.com/MaxMillerLab/census/issues/1").Return(nil),
	)

	result := Apply(context.Background(), mockGH, "MaxMillerLab", candidates, false, logger.NewNoopLogger())

	assert.False(t, result.DryRun)
	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Succeeded)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, 9, result.Failures[0].Candidate.Number)
	assert.ErrorIs(t, result.Failures[0].Err, ErrAddFailed)
}

func TestGroupByProject(t *testing.T) {
	groups := GroupByProject([]Candidate{
		{Repository: "census", Number: 1, ProjectTitle: "Census"},
		{Repository: "bills", Number: 5, ProjectTitle: "Bill Probability and Impact"},
		{Repository: "census", Number: 2, ProjectTitle: "Census"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "Bill Probability and Impact", groups[0].ProjectTitle)
	assert.Equal(t, "Census", groups[1].ProjectTitle)
	assert.Len(t, groups[1].Candidates, 2)
}
