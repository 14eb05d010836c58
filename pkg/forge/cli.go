package forge

import (
	"context"

	"github.com/lerenn/issue-triage/pkg/gh"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// CLIName is the name of the gh CLI issue source.
const CLIName = "gh"

// CLI lists issues through the gh CLI.
type CLI struct {
	gh gh.GH
}

// NewCLI creates an issue source backed by gh.
func NewCLI(g gh.GH) *CLI {
	return &CLI{gh: g}
}

// Name returns the name of the issue source.
func (c *CLI) Name() string {
	return CLIName
}

// ListOpenIssues runs `gh issue list` for repo.
func (c *CLI) ListOpenIssues(ctx context.Context, repo string, limit int) ([]snapshot.Issue, error) {
	return c.gh.IssueList(ctx, repo, limit)
}
