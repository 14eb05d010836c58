// Package reconcile finds issues missing from their repository's project and adds them.
package reconcile

import "errors"

// ErrAddFailed wraps a failed project item addition.
var ErrAddFailed = errors.New("failed to add issue to project")
