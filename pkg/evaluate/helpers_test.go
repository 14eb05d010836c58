//go:build unit

package evaluate

import (
	"time"

	"github.com/lerenn/issue-triage/pkg/index"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func repoIssue(repo string, number int, url string, updatedAt time.Time, assignees ...string) snapshot.RepoIssue {
	issue := snapshot.Issue{
		Number:    number,
		Title:     "issue",
		URL:       url,
		UpdatedAt: updatedAt.UTC().Format(time.RFC3339),
	}
	for _, a := range assignees {
		issue.Assignees = append(issue.Assignees, snapshot.Assignee{Login: a})
	}
	return snapshot.RepoIssue{Issue: issue, Repository: repo}
}

// projectIndex builds an index with a single project holding the given items keyed by URL.
func projectIndex(title string, items map[string]map[string]interface{}) *index.Index {
	var list []snapshot.ProjectItem
	for url, fields := range items {
		list = append(list, snapshot.ProjectItem{
			Content: snapshot.ItemContent{Type: snapshot.ContentTypeIssue, URL: url},
			Fields:  fields,
		})
	}
	doc := snapshot.ProjectsDocument{
		Projects:     []snapshot.Project{{Number: 1, Title: title}},
		ProjectItems: map[string]snapshot.ProjectItems{"1": {Title: title, Items: list}},
	}
	return index.Build(doc, logger.NewCollector(nil))
}

func emptyIndex() *index.Index {
	return index.Build(snapshot.ProjectsDocument{}, logger.NewCollector(nil))
}
