// Package mapping suggests repository to project mappings from existing project items.
package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lerenn/issue-triage/pkg/snapshot"
	"gopkg.in/yaml.v3"
)

// ErrRender is returned when a suggestion cannot be rendered.
var ErrRender = errors.New("failed to render mapping suggestions")

// noMappingComment annotates repositories without any issue in a project.
const noMappingComment = "no existing mapping found"

// ProjectCount is the number of a repository's issues found in a project.
type ProjectCount struct {
	Project string
	Count   int
}

// Suggestion is the mapping analysis of one repository.
type Suggestion struct {
	Repository string
	// Projects are sorted by descending count, scan order on ties.
	Projects []ProjectCount
	// Suggested is the most frequent project, empty when none.
	Suggested string
}

// Analyze counts, per repository short name, how many of its issues each project holds.
// Repositories are returned sorted by short name.
func Analyze(snap *snapshot.Snapshot) []Suggestion {
	urlToRepo := make(map[string]string)
	repos := make(map[string]bool)
	for fullName, issues := range snap.Issues.Repositories {
		short := snapshot.ShortName(fullName)
		repos[short] = true
		for _, issue := range issues {
			urlToRepo[issue.URL] = short
		}
	}

	counts := make(map[string][]ProjectCount)
	for _, project := range snap.Projects.Projects {
		for _, item := range snap.Projects.ItemsFor(project.Number) {
			if !item.IsIssue() {
				continue
			}
			repo, ok := urlToRepo[item.Content.URL]
			if !ok {
				continue
			}
			counts[repo] = increment(counts[repo], project.Title)
		}
	}

	names := make([]string, 0, len(repos))
	for name := range repos {
		names = append(names, name)
	}
	sort.Strings(names)

	suggestions := make([]Suggestion, 0, len(names))
	for _, name := range names {
		projects := counts[name]
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Count > projects[j].Count
		})

		s := Suggestion{Repository: name, Projects: projects}
		if len(projects) > 0 {
			s.Suggested = projects[0].Project
		}
		suggestions = append(suggestions, s)
	}
	return suggestions
}

func increment(counts []ProjectCount, project string) []ProjectCount {
	for i := range counts {
		if counts[i].Project == project {
			counts[i].Count++
			return counts
		}
	}
	return append(counts, ProjectCount{Project: project, Count: 1})
}

// RenderText prints the per-repository analysis.
func RenderText(w io.Writer, suggestions []Suggestion) error {
	var b strings.Builder

	b.WriteString("Repository to Project Mapping Analysis\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "\n%s:\n", s.Repository)
		if len(s.Projects) == 0 {
			b.WriteString("  - No issues found in any project\n")
			continue
		}
		for _, p := range s.Projects {
			fmt.Fprintf(&b, "  - %s: %d issues\n", p.Project, p.Count)
		}
		fmt.Fprintf(&b, "  → Most likely project: %s\n", s.Suggested)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// RenderYAML renders the suggestions as a project_mapping block ready to paste
// into the configuration. Repositories without a suggestion map to null.
func RenderYAML(suggestions []Suggestion) ([]byte, error) {
	mappingNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range suggestions {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Repository}
		value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Suggested}
		if s.Suggested == "" {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null", LineComment: noMappingComment}
		}
		mappingNode.Content = append(mappingNode.Content, key, value)
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "project_mapping"},
		mappingNode,
	}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}
