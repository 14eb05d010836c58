package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// IssueList executes `gh issue list --repo <repo> --state open --json <fields> --limit <limit>`.
func (g *realGH) IssueList(ctx context.Context, repo string, limit int) ([]snapshot.Issue, error) {
	output, err := g.exec(ctx, "issue", "list",
		"--repo", repo,
		"--state", "open",
		"--json", IssueFields,
		"--limit", strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}

	var issues []snapshot.Issue
	if err := json.Unmarshal(output, &issues); err != nil {
		return nil, fmt.Errorf("%w: issue list for %s: %w", ErrUnexpectedOutput, repo, err)
	}
	return issues, nil
}
