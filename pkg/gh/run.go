package gh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner executes a command and returns its standard output and error streams.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// exec runs gh with the given arguments.
func (g *realGH) exec(ctx context.Context, args ...string) ([]byte, error) {
	stdout, stderr, err := g.run(ctx, "gh", args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrGHNotInstalled, err)
		}
		return nil, fmt.Errorf("%w: %w (command: gh %s, output: %s)",
			ErrCommandFailed, err, strings.Join(args, " "), strings.TrimSpace(string(stderr)))
	}
	return stdout, nil
}

// Observer receives the duration of every gh invocation.
type Observer interface {
	ObserveCommandDuration(command, result string, elapsed float64)
}

// InstrumentRunner wraps run so each invocation is reported to observer,
// labelled with its first two arguments.
func InstrumentRunner(run Runner, observer Observer) Runner {
	return func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		start := time.Now()
		stdout, stderr, err := run(ctx, name, args...)

		result := "success"
		if err != nil {
			result = "failure"
		}
		observer.ObserveCommandDuration(commandLabel(args), result, time.Since(start).Seconds())

		return stdout, stderr, err
	}
}

func commandLabel(args []string) string {
	if len(args) > 2 {
		args = args[:2]
	}
	return strings.Join(args, " ")
}
