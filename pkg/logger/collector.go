package logger

import (
	"fmt"
	"sort"
	"strings"
)

// Level is the severity of a diagnostic entry.
type Level string

// Diagnostic levels.
const (
	LevelInfo Level = "info"
	LevelWarn Level = "warn"
)

// Entry is a single diagnostic recorded by a Collector.
type Entry struct {
	Level   Level
	Message string
	Fields  map[string]string
}

// String renders the entry as "message (key=value, ...)" with sorted keys.
func (e Entry) String() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+e.Fields[k])
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(pairs, ", "))
}

// Diagnostics records recoverable problems met while processing a snapshot.
type Diagnostics interface {
	Logger

	// Warn records a non-fatal warning with optional key/value pairs.
	Warn(message string, keyvals ...string)
}

// Collector keeps every diagnostic in memory so callers can inspect them
// after an operation instead of scraping stderr.
type Collector struct {
	next    Logger
	entries []Entry
}

// NewCollector creates a collector forwarding info messages to next.
// A nil next logger discards them.
func NewCollector(next Logger) *Collector {
	if next == nil {
		next = NewNoopLogger()
	}
	return &Collector{next: next}
}

// Logf records an info entry and forwards it.
func (c *Collector) Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.entries = append(c.entries, Entry{Level: LevelInfo, Message: msg})
	c.next.Logf("%s", msg)
}

// Warn records a warning. Keyvals are read as pairs; an odd trailing key gets an empty value.
func (c *Collector) Warn(message string, keyvals ...string) {
	var fields map[string]string
	if len(keyvals) > 0 {
		fields = make(map[string]string, (len(keyvals)+1)/2)
		for i := 0; i < len(keyvals); i += 2 {
			value := ""
			if i+1 < len(keyvals) {
				value = keyvals[i+1]
			}
			fields[keyvals[i]] = value
		}
	}
	c.entries = append(c.entries, Entry{Level: LevelWarn, Message: message, Fields: fields})
}

// Entries returns every recorded entry in order.
func (c *Collector) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Warnings returns only the warning entries in order.
func (c *Collector) Warnings() []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Level == LevelWarn {
			out = append(out, e)
		}
	}
	return out
}
