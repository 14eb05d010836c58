package gh

import (
	"context"
	"errors"
	"fmt"
)

// Check verifies that gh is installed and authenticated.
func Check(ctx context.Context, g GH) error {
	if _, err := g.Version(ctx); err != nil {
		if errors.Is(err, ErrGHNotInstalled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrGHNotInstalled, err)
	}

	if err := g.AuthStatus(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrGHNotAuthenticated, err)
	}

	return nil
}
