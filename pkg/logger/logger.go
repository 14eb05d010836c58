// Package logger provides logging functionality for the triage application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger that writes to an io.Writer.
type writerLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return &writerLogger{out: os.Stdout}
}

// NewVerboseLogger creates a logger writing progress messages to stderr,
// keeping stdout free for reports.
func NewVerboseLogger() Logger {
	return &writerLogger{out: os.Stderr, prefix: "[VERBOSE] "}
}

// NewWriterLogger creates a logger writing to the given writer.
func NewWriterLogger(out io.Writer) Logger {
	return &writerLogger{out: out}
}

// Logf writes a formatted message with thread safety.
func (d *writerLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, d.prefix+format+"\n", args...)
}
