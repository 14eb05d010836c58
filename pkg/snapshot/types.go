package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ContentTypeIssue is the project item content type carrying an issue.
const ContentTypeIssue = "Issue"

// Assignee is a user assigned to an issue.
type Assignee struct {
	Login string `json:"login"`
}

// Label is an issue label.
type Label struct {
	Name string `json:"name"`
}

// Milestone is the milestone an issue belongs to.
type Milestone struct {
	Title string `json:"title"`
}

// Issue is an open issue as cached by the collector.
type Issue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	UpdatedAt string     `json:"updatedAt"`
	CreatedAt string     `json:"createdAt,omitempty"`
	Assignees []Assignee `json:"assignees"`
	Labels    []Label    `json:"labels,omitempty"`
	Milestone *Milestone `json:"milestone,omitempty"`
	Body      string     `json:"body,omitempty"`
}

// AssigneeLogins returns the logins of the issue assignees.
func (i Issue) AssigneeLogins() []string {
	logins := make([]string, 0, len(i.Assignees))
	for _, a := range i.Assignees {
		logins = append(logins, a.Login)
	}
	return logins
}

// RepoIssue is an issue together with the repository it belongs to.
type RepoIssue struct {
	Issue
	// Repository is the full name (owner/name).
	Repository string
}

// ShortRepository returns the repository name without its owner.
func (r RepoIssue) ShortRepository() string {
	return ShortName(r.Repository)
}

// ShortName returns the last path element of a repository full name.
func ShortName(fullName string) string {
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}

// IssuesDocument is the content of issues.json.
type IssuesDocument struct {
	CollectionTime string             `json:"collection_time"`
	Repositories   map[string][]Issue `json:"repositories"`
}

// Project is a GitHub project of the organization.
type Project struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	ID     string `json:"id,omitempty"`
	URL    string `json:"url,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// ItemContent is the object a project item points to.
type ItemContent struct {
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
	Number     int    `json:"number,omitempty"`
	Title      string `json:"title,omitempty"`
	Repository string `json:"repository,omitempty"`
}

// ProjectItem links a project to its content. Every key other than id and
// content is a project field and is kept verbatim in Fields.
type ProjectItem struct {
	ID      string
	Content ItemContent
	Fields  map[string]interface{}
}

// UnmarshalJSON decodes an item leniently: malformed id or content values are
// treated as absent rather than failing the whole snapshot.
func (p *ProjectItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = ProjectItem{Fields: make(map[string]interface{}, len(raw))}
	for key, value := range raw {
		switch key {
		case "id":
			_ = json.Unmarshal(value, &p.ID)
		case "content":
			var content ItemContent
			if err := json.Unmarshal(value, &content); err == nil {
				p.Content = content
			}
		default:
			var field interface{}
			if err := json.Unmarshal(value, &field); err != nil {
				return err
			}
			p.Fields[key] = field
		}
	}
	return nil
}

// MarshalJSON encodes the item back into the flat gh layout.
func (p ProjectItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Fields)+2)
	for k, v := range p.Fields {
		out[k] = v
	}
	if p.ID != "" {
		out["id"] = p.ID
	}
	out["content"] = p.Content
	return json.Marshal(out)
}

// IsIssue reports whether the item points to an issue.
func (p ProjectItem) IsIssue() bool {
	return p.Content.Type == ContentTypeIssue
}

// Field returns a field value rendered as a string, or "" when absent.
func (p ProjectItem) Field(name string) string {
	return FieldString(p.Fields[name])
}

// FieldString renders a decoded JSON field value as a string.
func FieldString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64, bool:
		b, _ := json.Marshal(v)
		return string(b)
	default:
		return ""
	}
}

// ProjectItems is the cached item list of one project.
type ProjectItems struct {
	Title string        `json:"title"`
	Items []ProjectItem `json:"items"`
}

// ProjectsDocument is the content of projects.json.
type ProjectsDocument struct {
	CollectionTime string                  `json:"collection_time"`
	Organization   string                  `json:"organization"`
	Projects       []Project               `json:"projects"`
	ProjectItems   map[string]ProjectItems `json:"project_items"`
	// Skipped lists the malformed records dropped while decoding.
	Skipped []SkippedRecord `json:"-"`
}

// SkippedRecord is a projects.json record that could not be decoded.
type SkippedRecord struct {
	// Path locates the record, e.g. projects[2] or project_items.3.items[0].
	Path   string
	Reason string
}

// UnmarshalJSON decodes the document record by record. A malformed project,
// item list or item is dropped and listed in Skipped; only invalid JSON or a
// document that is not an object fails.
func (d *ProjectsDocument) UnmarshalJSON(data []byte) error {
	var raw struct {
		CollectionTime json.RawMessage `json:"collection_time"`
		Organization   json.RawMessage `json:"organization"`
		Projects       json.RawMessage `json:"projects"`
		ProjectItems   json.RawMessage `json:"project_items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = ProjectsDocument{}
	d.decode("collection_time", raw.CollectionTime, &d.CollectionTime)
	d.decode("organization", raw.Organization, &d.Organization)

	var projects []json.RawMessage
	if d.decode("projects", raw.Projects, &projects) {
		for i, record := range projects {
			var project Project
			if d.decodeRecord(fmt.Sprintf("projects[%d]", i), record, &project) {
				d.Projects = append(d.Projects, project)
			}
		}
	}

	var lists map[string]json.RawMessage
	if !d.decode("project_items", raw.ProjectItems, &lists) {
		return nil
	}

	numbers := make([]string, 0, len(lists))
	for number := range lists {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)

	d.ProjectItems = make(map[string]ProjectItems, len(lists))
	for _, number := range numbers {
		path := "project_items." + number
		var fields struct {
			Title json.RawMessage `json:"title"`
			Items json.RawMessage `json:"items"`
		}
		if !d.decodeRecord(path, lists[number], &fields) {
			continue
		}

		var list ProjectItems
		d.decode(path+".title", fields.Title, &list.Title)

		var items []json.RawMessage
		if d.decode(path+".items", fields.Items, &items) {
			for i, record := range items {
				var item ProjectItem
				if d.decodeRecord(fmt.Sprintf("%s.items[%d]", path, i), record, &item) {
					list.Items = append(list.Items, item)
				}
			}
		}
		d.ProjectItems[number] = list
	}
	return nil
}

// decode fills out from an optional value. Absent or null values are left
// untouched; a value of the wrong shape is recorded as skipped.
func (d *ProjectsDocument) decode(path string, value json.RawMessage, out interface{}) bool {
	if isNull(value) {
		return false
	}
	if err := json.Unmarshal(value, out); err != nil {
		d.Skipped = append(d.Skipped, SkippedRecord{Path: path, Reason: err.Error()})
		return false
	}
	return true
}

// decodeRecord is decode for list and map entries, where null is malformed too.
func (d *ProjectsDocument) decodeRecord(path string, value json.RawMessage, out interface{}) bool {
	if isNull(value) {
		d.Skipped = append(d.Skipped, SkippedRecord{Path: path, Reason: "record is null"})
		return false
	}
	return d.decode(path, value, out)
}

func isNull(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Summary is the content of summary.json.
type Summary struct {
	CollectionID      string `json:"collection_id"`
	CollectionTime    string `json:"collection_time"`
	Source            string `json:"source"`
	TotalRepositories int    `json:"total_repositories"`
	TotalIssues       int    `json:"total_issues"`
	TotalProjects     int    `json:"total_projects"`
	TotalProjectItems int    `json:"total_project_items"`
}

// Snapshot is a point-in-time copy of the tracker data.
type Snapshot struct {
	Issues   IssuesDocument
	Projects ProjectsDocument
}

// AllIssues returns the issues of every repository. Repositories listed in order
// come first in that order; the remaining ones follow sorted by name.
func (s *Snapshot) AllIssues(order []string) []RepoIssue {
	var out []RepoIssue
	for _, repo := range s.RepositoryNames(order) {
		for _, issue := range s.Issues.Repositories[repo] {
			out = append(out, RepoIssue{Issue: issue, Repository: repo})
		}
	}
	return out
}

// RepositoryNames returns the repositories present in the snapshot, ordered as in AllIssues.
func (s *Snapshot) RepositoryNames(order []string) []string {
	seen := make(map[string]bool, len(s.Issues.Repositories))
	names := make([]string, 0, len(s.Issues.Repositories))
	for _, repo := range order {
		if _, ok := s.Issues.Repositories[repo]; ok && !seen[repo] {
			names = append(names, repo)
			seen[repo] = true
		}
	}

	var rest []string
	for repo := range s.Issues.Repositories {
		if !seen[repo] {
			rest = append(rest, repo)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// ProjectByTitle finds a project by its exact title.
func (s *Snapshot) ProjectByTitle(title string) (Project, bool) {
	for _, p := range s.Projects.Projects {
		if p.Title == title {
			return p, true
		}
	}
	return Project{}, false
}

// ItemsFor returns the cached items of a project; a project without cached items has none.
func (d *ProjectsDocument) ItemsFor(projectNumber int) []ProjectItem {
	return d.ProjectItems[strconv.Itoa(projectNumber)].Items
}
