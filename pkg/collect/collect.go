// Package collect fetches open issues and project items and stores them as a snapshot.
package collect

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lerenn/issue-triage/pkg/forge"
	"github.com/lerenn/issue-triage/pkg/gh"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// ErrSaveSnapshot is returned when the collected snapshot cannot be stored.
var ErrSaveSnapshot = errors.New("failed to save collected data")

// Options configures a collection.
type Options struct {
	Organization string
	Repositories []string
	Limit        int
	DataDir      string
}

// Collector gathers issues from an issue source and projects from gh.
type Collector struct {
	source forge.Forge
	gh     gh.GH
	store  snapshot.Store
	newID  func() string
}

// NewCollector creates a collector.
func NewCollector(source forge.Forge, g gh.GH, store snapshot.Store) *Collector {
	return &Collector{
		source: source,
		gh:     g,
		store:  store,
		newID:  uuid.NewString,
	}
}

// Collect fetches everything, then replaces the content of the data directory.
// A repository or project that cannot be listed is skipped with a warning.
func (c *Collector) Collect(ctx context.Context, opts Options, now time.Time, diag logger.Diagnostics) (*snapshot.Snapshot, snapshot.Summary, error) {
	collectionTime := now.UTC().Format(time.RFC3339)
	snap := &snapshot.Snapshot{
		Issues: snapshot.IssuesDocument{
			CollectionTime: collectionTime,
			Repositories:   make(map[string][]snapshot.Issue),
		},
		Projects: snapshot.ProjectsDocument{
			CollectionTime: collectionTime,
			Organization:   opts.Organization,
			Projects:       []snapshot.Project{},
			ProjectItems:   make(map[string]snapshot.ProjectItems),
		},
	}

	diag.Logf("Collecting issues from %d repositories with %s", len(opts.Repositories), c.source.Name())
	for _, repo := range opts.Repositories {
		issues, err := c.source.ListOpenIssues(ctx, repo, opts.Limit)
		if err != nil {
			diag.Warn("failed to collect issues", "repository", repo, "error", err.Error())
			continue
		}
		diag.Logf("  %s: %d open issues", repo, len(issues))
		if len(issues) > 0 {
			snap.Issues.Repositories[repo] = issues
		}
	}

	diag.Logf("Collecting projects for %s", opts.Organization)
	projects, err := c.gh.ProjectList(ctx, opts.Organization, opts.Limit)
	if err != nil {
		diag.Warn("failed to collect projects", "organization", opts.Organization, "error", err.Error())
	} else if projects != nil {
		snap.Projects.Projects = projects
	}

	for _, project := range snap.Projects.Projects {
		items, err := c.gh.ProjectItemList(ctx, project.Number, opts.Organization, opts.Limit)
		if err != nil {
			diag.Warn("failed to collect project items", "project", project.Title, "error", err.Error())
			continue
		}
		diag.Logf("  project %d (%s): %d items", project.Number, project.Title, len(items))
		if len(items) > 0 {
			snap.Projects.ProjectItems[strconv.Itoa(project.Number)] = snapshot.ProjectItems{
				Title: project.Title,
				Items: items,
			}
		}
	}

	summary := c.summarize(snap, collectionTime)

	if err := c.store.Reset(opts.DataDir); err != nil {
		return nil, snapshot.Summary{}, fmt.Errorf("%w: %w", ErrSaveSnapshot, err)
	}
	if err := c.store.Save(opts.DataDir, snap, summary); err != nil {
		return nil, snapshot.Summary{}, fmt.Errorf("%w: %w", ErrSaveSnapshot, err)
	}

	return snap, summary, nil
}

func (c *Collector) summarize(snap *snapshot.Snapshot, collectionTime string) snapshot.Summary {
	summary := snapshot.Summary{
		CollectionID:      c.newID(),
		CollectionTime:    collectionTime,
		Source:            c.source.Name(),
		TotalRepositories: len(snap.Issues.Repositories),
		TotalProjects:     len(snap.Projects.Projects),
	}
	for _, issues := range snap.Issues.Repositories {
		summary.TotalIssues += len(issues)
	}
	for _, cached := range snap.Projects.ProjectItems {
		summary.TotalProjectItems += len(cached.Items)
	}
	return summary
}
