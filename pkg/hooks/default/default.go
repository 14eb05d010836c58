// Package defaulthooks provides default hook implementations for triage.
package defaulthooks

import (
	"github.com/lerenn/issue-triage/pkg/hooks"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/metrics"
	"github.com/lerenn/issue-triage/pkg/triage/consts"
)

// NewDefaultHooksManager creates a hooks manager logging every operation and
// publishing report counts to provider.
func NewDefaultHooksManager(log logger.Logger, provider metrics.Provider) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if err := hooks.NewLoggingHook(log).RegisterForOperations(hm, consts.Operations...); err != nil {
		return nil, err
	}

	if err := hooks.NewMetricsHook(provider).RegisterForOperations(hm, consts.ReportOperations...); err != nil {
		return nil, err
	}

	return hm, nil
}
