package gh

import (
	"context"
	"strconv"
)

// ProjectItemAdd executes `gh project item-add <number> --owner <owner> --url <url>`.
func (g *realGH) ProjectItemAdd(ctx context.Context, number int, owner, url string) error {
	_, err := g.exec(ctx, "project", "item-add", strconv.Itoa(number),
		"--owner", owner,
		"--url", url)
	return err
}
