package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// ProjectList executes `gh project list --owner <owner> --format json --limit <limit>`.
func (g *realGH) ProjectList(ctx context.Context, owner string, limit int) ([]snapshot.Project, error) {
	output, err := g.exec(ctx, "project", "list",
		"--owner", owner,
		"--format", "json",
		"--limit", strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Projects []snapshot.Project `json:"projects"`
	}
	if err := json.Unmarshal(output, &payload); err != nil {
		return nil, fmt.Errorf("%w: project list for %s: %w", ErrUnexpectedOutput, owner, err)
	}
	return payload.Projects, nil
}
