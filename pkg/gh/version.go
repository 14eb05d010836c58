package gh

import (
	"context"
	"strings"
)

// Version executes `gh --version` and returns its first line.
func (g *realGH) Version(ctx context.Context) (string, error) {
	output, err := g.exec(ctx, "--version")
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	return line, nil
}
