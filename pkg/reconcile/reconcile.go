package reconcile

import (
	"context"
	"fmt"
	"sort"

	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// Adder adds an issue URL to a project.
type Adder interface {
	ProjectItemAdd(ctx context.Context, number int, owner, url string) error
}

// Candidate is an issue to add to the project its repository maps to.
type Candidate struct {
	// Repository is the short repository name.
	Repository    string
	Number        int
	Title         string
	URL           string
	ProjectTitle  string
	ProjectNumber int
	ProjectID     string
}

// Failure is a candidate whose addition failed.
type Failure struct {
	Candidate Candidate
	Err       error
}

// Result is the outcome of a reconciliation.
type Result struct {
	Candidates []Candidate
	DryRun     bool
	Attempted  int
	Succeeded  int
	Failures   []Failure
}

// ProjectGroup is the candidates of one project.
type ProjectGroup struct {
	ProjectTitle string
	Candidates   []Candidate
}

// IssuesAlreadyInProject returns the URLs of the issue items of a project.
func IssuesAlreadyInProject(doc snapshot.ProjectsDocument, projectNumber int) map[string]bool {
	urls := make(map[string]bool)
	for _, item := range doc.ItemsFor(projectNumber) {
		if item.IsIssue() && item.Content.URL != "" {
			urls[item.Content.URL] = true
		}
	}
	return urls
}

// FindCandidates lists the issues not yet in the project mapped to their repository.
// Repositories without a mapping, or mapped to an unknown project, are skipped with a warning.
// A non-empty repoFilter keeps only the repository with that short name.
func FindCandidates(snap *snapshot.Snapshot, mapping map[string]string, repoFilter string, order []string, diag logger.Diagnostics) []Candidate {
	var candidates []Candidate

	for _, fullName := range snap.RepositoryNames(order) {
		short := snapshot.ShortName(fullName)
		if repoFilter != "" && short != repoFilter {
			continue
		}

		title := mapping[short]
		if title == "" {
			diag.Warn("no project mapping found for repository", "repository", short)
			continue
		}

		project, ok := snap.ProjectByTitle(title)
		if !ok {
			diag.Warn("project not found for repository", "repository", short, "project", title)
			continue
		}

		inProject := IssuesAlreadyInProject(snap.Projects, project.Number)
		for _, issue := range snap.Issues.Repositories[fullName] {
			if inProject[issue.URL] {
				continue
			}
			candidates = append(candidates, Candidate{
				Repository:    short,
				Number:        issue.Number,
				Title:         issue.Title,
				URL:           issue.URL,
				ProjectTitle:  project.Title,
				ProjectNumber: project.Number,
				ProjectID:     project.ID,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Repository != candidates[j].Repository {
			return candidates[i].Repository < candidates[j].Repository
		}
		return candidates[i].Number < candidates[j].Number
	})

	return candidates
}

// Apply adds every candidate to its project, one call at a time. A failed call is
// recorded and the remaining candidates are still attempted. In dry run nothing is called.
func Apply(ctx context.Context, adder Adder, owner string, candidates []Candidate, dryRun bool, log logger.Logger) Result {
	result := Result{Candidates: candidates, DryRun: dryRun}
	if dryRun {
		return result
	}

	for _, c := range candidates {
		result.Attempted++
		if err := adder.ProjectItemAdd(ctx, c.ProjectNumber, owner, c.URL); err != nil {
			log.Logf("Failed to add %s#%d to %s: %v", c.Repository, c.Number, c.ProjectTitle, err)
			result.Failures = append(result.Failures, Failure{
				Candidate: c,
				Err:       fmt.Errorf("%w: %s#%d: %w", ErrAddFailed, c.Repository, c.Number, err),
			})
			continue
		}
		log.Logf("Added %s#%d to %s", c.Repository, c.Number, c.ProjectTitle)
		result.Succeeded++
	}

	return result
}

// GroupByProject groups candidates by project title, titles sorted.
func GroupByProject(candidates []Candidate) []ProjectGroup {
	byTitle := make(map[string][]Candidate)
	for _, c := range candidates {
		byTitle[c.ProjectTitle] = append(byTitle[c.ProjectTitle], c)
	}

	titles := make([]string, 0, len(byTitle))
	for title := range byTitle {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	groups := make([]ProjectGroup, 0, len(titles))
	for _, title := range titles {
		groups = append(groups, ProjectGroup{ProjectTitle: title, Candidates: byTitle[title]})
	}
	return groups
}
