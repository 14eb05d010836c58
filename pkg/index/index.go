// Package index builds the issue URL to project metadata index from cached project items.
package index

import (
	"strconv"

	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// Field names read from project items.
const (
	FieldStatus    = "status"
	FieldPriority  = "priority"
	FieldStartDate = "start date"
)

// UnknownProject names a project whose title is missing from the snapshot.
const UnknownProject = "Unknown"

// TargetDateKeys are the field names holding a target date, by precedence.
var TargetDateKeys = []string{"target completion date", "target end date", "due date", "deadline"}

// Metadata is what the project board knows about one issue.
type Metadata struct {
	Project       string
	ProjectNumber int
	Status        string
	Priority      string
	StartDate     string
	TargetDate    string
	Fields        map[string]interface{}
}

// Index maps issue URLs to their project metadata.
type Index struct {
	entries   map[string]Metadata
	conflicts map[string][]string
}

// Build indexes every issue item of every project, in project order.
// When an issue sits in several projects the last one scanned wins and the
// URL is recorded as a conflict.
func Build(doc snapshot.ProjectsDocument, diag logger.Diagnostics) *Index {
	idx := &Index{
		entries:   make(map[string]Metadata),
		conflicts: make(map[string][]string),
	}

	for _, project := range doc.Projects {
		cached, ok := doc.ProjectItems[strconv.Itoa(project.Number)]
		if !ok {
			continue
		}

		title := project.Title
		if title == "" {
			title = cached.Title
		}
		if title == "" {
			title = UnknownProject
		}

		for _, item := range cached.Items {
			if !item.IsIssue() {
				continue
			}
			if item.Content.URL == "" {
				diag.Warn("skipping project item without URL",
					"project", title, "item", item.ID)
				continue
			}
			idx.add(item, project.Number, title, diag)
		}
	}

	return idx
}

func (idx *Index) add(item snapshot.ProjectItem, number int, title string, diag logger.Diagnostics) {
	url := item.Content.URL

	if previous, exists := idx.entries[url]; exists {
		if len(idx.conflicts[url]) == 0 {
			idx.conflicts[url] = []string{previous.Project}
		}
		idx.conflicts[url] = append(idx.conflicts[url], title)
		diag.Warn("issue found in several projects, keeping the last one",
			"url", url, "previous", previous.Project, "project", title)
	}

	idx.entries[url] = Metadata{
		Project:       title,
		ProjectNumber: number,
		Status:        item.Field(FieldStatus),
		Priority:      item.Field(FieldPriority),
		StartDate:     item.Field(FieldStartDate),
		TargetDate:    targetDate(item),
		Fields:        item.Fields,
	}
}

func targetDate(item snapshot.ProjectItem) string {
	for _, key := range TargetDateKeys {
		if v := item.Field(key); v != "" {
			return v
		}
	}
	return ""
}

// Lookup returns the metadata of an issue URL.
func (idx *Index) Lookup(url string) (Metadata, bool) {
	m, ok := idx.entries[url]
	return m, ok
}

// Len returns the number of indexed issues.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Conflicts returns, for each URL found in several projects, every project title seen in scan order.
func (idx *Index) Conflicts() map[string][]string {
	out := make(map[string][]string, len(idx.conflicts))
	for url, titles := range idx.conflicts {
		out[url] = append([]string(nil), titles...)
	}
	return out
}
