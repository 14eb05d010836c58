//go:build unit

package collect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lerenn/issue-triage/pkg/forge"
	ghmocks "github.com/lerenn/issue-triage/pkg/gh/mocks"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	snapshotmocks "github.com/lerenn/issue-triage/pkg/snapshot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var collectNow = time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

func TestCollector_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := ghmocks.NewMockGH(ctrl)
	mockStore := snapshotmocks.NewMockStore(ctrl)

	opts := Options{
		Organization: "MaxMillerLab",
		Repositories: []string{"MaxMillerLab/bills", "MaxMillerLab/empty", "MaxMillerLab/broken"},
		Limit:        1000,
		DataDir:      "/tmp/data",
	}

	mockGH.EXPECT().IssueList(gomock.Any(), "MaxMillerLab/bills", 1000).Return([]snapshot.Issue{{Number: 5, URL: "u5"}, {Number: 6, URL: "u6"}}, nil)
	mockGH.EXPECT().IssueList(gomock.Any(), "MaxMillerLab/empty", 1000).Return([]snapshot.Issue{}, nil)
	mockGH.EXPECT().IssueList(gomock.Any(), "MaxMillerLab/broken", 1000).Return(nil, errors.New("not found"))
	mockGH.EXPECT().ProjectList(gomock.Any(), "MaxMillerLab", 1000).Return([]snapshot.Project{
		{Number: 3, Title: "Bills"},
		{Number: 4, Title: "Empty board"},
	}, nil)
	mockGH.EXPECT().ProjectItemList(gomock.Any(), 3, "MaxMillerLab", 1000).Return([]snapshot.ProjectItem{
		{Content: snapshot.ItemContent{Type: snapshot.ContentTypeIssue, URL: "u5"}},
	}, nil)
	mockGH.EXPECT().ProjectItemList(gomock.Any(), 4, "MaxMillerLab", 1000).Return(nil, nil)

	var saved snapshot.Summary
	gomock.InOrder(
		mockStore.EXPECT().Reset("/tmp/data").Return(nil),
		mockStore.EXPECT().Save("/tmp/data", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, _ *snapshot.Snapshot, summary snapshot.Summary) error {
				saved = summary
				return nil
			}),
	)

	diag := logger.NewCollector(nil)
	collector := NewCollector(forge.NewCLI(mockGH), mockGH, mockStore)
	snap, summary, err := collector.Collect(context.Background(), opts, collectNow, diag)
	require.NoError(t, err)

	assert.Equal(t, []string{"MaxMillerLab/bills"}, snap.RepositoryNames(nil))
	assert.Len(t, snap.Projects.Projects, 2)
	assert.Contains(t, snap.Projects.ProjectItems, "3")
	assert.NotContains(t, snap.Projects.ProjectItems, "4")
	assert.Equal(t, "2024-03-10T08:00:00Z", snap.Issues.CollectionTime)

	assert.Equal(t, saved, summary)
	assert.Equal(t, "gh", summary.Source)
	assert.Equal(t, 1, summary.TotalRepositories)
	assert.Equal(t, 2, summary.TotalIssues)
	assert.Equal(t, 2, summary.TotalProjects)
	assert.Equal(t, 1, summary.TotalProjectItems)
	_, err = uuid.Parse(summary.CollectionID)
	assert.NoError(t, err)

	require.Len(t, diag.Warnings(), 1)
	assert.Equal(t, "MaxMillerLab/broken", diag.Warnings()[0].Fields["repository"])
}

func TestCollector_Collect_ProjectListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := ghmocks.NewMockGH(ctrl)
	mockStore := snapshotmocks.NewMockStore(ctrl)

	mockGH.EXPECT().ProjectList(gomock.Any(), "MaxMillerLab", 10).Return(nil, errors.New("boom"))
	mockStore.EXPECT().Reset("data").Return(nil)
	mockStore.EXPECT().Save("data", gomock.Any(), gomock.Any()).Return(nil)

	diag := logger.NewCollector(nil)
	snap, summary, err := NewCollector(forge.NewCLI(mockGH), mockGH, mockStore).
		Collect(context.Background(), Options{Organization: "MaxMillerLab", Limit: 10, DataDir: "data"}, collectNow, diag)
	require.NoError(t, err)

	assert.NotNil(t, snap.Projects.Projects)
	assert.Zero(t, summary.TotalProjects)
	assert.Len(t, diag.Warnings(), 1)
}

func TestCollector_Collect_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := ghmocks.NewMockGH(ctrl)
	mockStore := snapshotmocks.NewMockStore(ctrl)

	mockGH.EXPECT().ProjectList(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	mockStore.EXPECT().Reset("data").Return(errors.New("read-only file system"))

	_, _, err := NewCollector(forge.NewCLI(mockGH), mockGH, mockStore).
		Collect(context.Background(), Options{Organization: "MaxMillerLab", DataDir: "data"}, collectNow, logger.NewCollector(nil))
	assert.ErrorIs(t, err, ErrSaveSnapshot)
}
