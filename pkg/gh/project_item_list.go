package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// ProjectItemList executes `gh project item-list <number> --owner <owner> --format json --limit <limit>`.
func (g *realGH) ProjectItemList(ctx context.Context, number int, owner string, limit int) ([]snapshot.ProjectItem, error) {
	output, err := g.exec(ctx, "project", "item-list", strconv.Itoa(number),
		"--owner", owner,
		"--format", "json",
		"--limit", strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []snapshot.ProjectItem `json:"items"`
	}
	if err := json.Unmarshal(output, &payload); err != nil {
		return nil, fmt.Errorf("%w: item list for project %d: %w", ErrUnexpectedOutput, number, err)
	}
	return payload.Items, nil
}
