// Package evaluate holds the rules flagging issues in a snapshot.
// Every evaluator is pure: it takes the current time explicitly and never mutates its input.
package evaluate

import "errors"

// ErrUnparseableDate is returned by ParseDate for values in neither accepted layout.
var ErrUnparseableDate = errors.New("unparseable date")
