package gh

import "context"

// AuthStatus executes `gh auth status`.
func (g *realGH) AuthStatus(ctx context.Context) error {
	_, err := g.exec(ctx, "auth", "status")
	return err
}
