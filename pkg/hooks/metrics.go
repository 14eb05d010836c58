package hooks

import (
	"github.com/lerenn/issue-triage/pkg/metrics"
)

// Result keys read by MetricsHook.
const (
	ResultScanned = "scanned"
	ResultFlagged = "flagged"
)

// MetricsHook records the scanned and flagged counts of report operations.
type MetricsHook struct {
	metrics metrics.Provider
}

// NewMetricsHook creates a new MetricsHook instance.
func NewMetricsHook(provider metrics.Provider) *MetricsHook {
	return &MetricsHook{metrics: provider}
}

// RegisterForOperations registers the hook as post hook of every operation.
func (h *MetricsHook) RegisterForOperations(hm HookManagerInterface, operations ...string) error {
	for _, op := range operations {
		if err := hm.RegisterPostHook(op, h); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the hook name.
func (h *MetricsHook) Name() string {
	return "metrics"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *MetricsHook) Priority() int {
	return 200
}

// Execute is a no-op for MetricsHook as it implements specific methods.
func (h *MetricsHook) Execute(_ *HookContext) error {
	return nil
}

// PostExecute publishes the counts found in the operation results.
func (h *MetricsHook) PostExecute(ctx *HookContext) error {
	if n, ok := ctx.Results[ResultScanned].(int); ok {
		h.metrics.SetScannedIssues(ctx.OperationName, n)
	}
	if n, ok := ctx.Results[ResultFlagged].(int); ok {
		h.metrics.SetFlaggedIssues(ctx.OperationName, n)
	}
	return nil
}
