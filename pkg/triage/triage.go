package triage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/issue-triage/pkg/config"
	"github.com/lerenn/issue-triage/pkg/dependencies"
	"github.com/lerenn/issue-triage/pkg/hooks"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// Triage runs reconciliation and reporting operations over the cached snapshot.
type Triage interface {
	// Init writes the default configuration.
	Init(opts InitOpts) error
	// Collect fetches issues and projects and replaces the cached snapshot.
	Collect(ctx context.Context, opts ...CollectOpts) (*CollectReport, error)
	// MissingInfo flags issues lacking project, priority, status, assignee or dates.
	MissingInfo(opts ...ReportOpts) (*MissingInfoReport, error)
	// Overdue flags issues whose target date has passed.
	Overdue(opts ...ReportOpts) (*OverdueReport, error)
	// Stale flags issues without recent activity and lists paused issues.
	Stale(opts ...StaleOpts) (*StaleReport, error)
	// AddToProjects adds issues to the project their repository maps to.
	AddToProjects(ctx context.Context, opts ...AddToProjectsOpts) (*AddToProjectsReport, error)
	// SuggestMappings suggests a project for each repository from the existing project items.
	SuggestMappings() (*SuggestMappingsReport, error)
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewTriageParams contains parameters for creating a new Triage instance.
type NewTriageParams struct {
	Dependencies *dependencies.Dependencies
	// DataDir overrides the configured data directory when set.
	DataDir string
	// OutputDir overrides the configured output directory when set.
	OutputDir string
}

type realTriage struct {
	deps      *dependencies.Dependencies
	dataDir   string
	outputDir string
}

// NewTriage creates a new Triage instance.
func NewTriage(params NewTriageParams) (Triage, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDependencies, err)
	}

	return &realTriage{
		deps:      deps,
		dataDir:   params.DataDir,
		outputDir: params.OutputDir,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (t *realTriage) VerbosePrint(msg string, args ...interface{}) {
	t.deps.Logger.Logf(msg, args...)
}

// SetLogger sets the logger for this Triage instance.
func (t *realTriage) SetLogger(logger logger.Logger) {
	t.deps.Logger = logger
}

// getConfig loads the configuration and applies the directory overrides.
func (t *realTriage) getConfig() (config.Config, error) {
	cfg, err := t.deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if t.dataDir != "" {
		cfg.DataDir = t.dataDir
	}
	if t.outputDir != "" {
		cfg.OutputDir = t.outputDir
	}
	return cfg, nil
}

// loadSnapshot loads the configuration and the cached snapshot.
// Malformed project records dropped while loading are reported to diag.
func (t *realTriage) loadSnapshot(diag logger.Diagnostics) (config.Config, *snapshot.Snapshot, error) {
	cfg, err := t.getConfig()
	if err != nil {
		return config.Config{}, nil, err
	}

	t.VerbosePrint("Loading snapshot from %s", cfg.DataDir)
	snap, err := t.deps.Store.Load(cfg.DataDir)
	if err != nil {
		return config.Config{}, nil, err
	}

	for _, skipped := range snap.Projects.Skipped {
		diag.Warn("Skipping malformed project record", "record", skipped.Path, "reason", skipped.Reason)
	}
	return cfg, snap, nil
}

// writeReport writes a CSV report into the output directory and returns its path.
func (t *realTriage) writeReport(cfg config.Config, name string, data []byte) (string, error) {
	path := filepath.Join(cfg.OutputDir, name)
	if err := t.deps.FS.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}
	if err := t.deps.FS.WriteFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}
	t.VerbosePrint("Report written to %s", path)
	return path, nil
}

// filterRepository keeps the issues of one repository, given by short or full name.
func filterRepository(issues []snapshot.RepoIssue, repo string) []snapshot.RepoIssue {
	if repo == "" {
		return issues
	}
	var out []snapshot.RepoIssue
	for _, issue := range issues {
		if issue.Repository == repo || strings.EqualFold(issue.ShortRepository(), repo) {
			out = append(out, issue)
		}
	}
	return out
}

// counted is implemented by reports exposing scanned and flagged issue counts.
type counted interface {
	Counts() (scanned, flagged int)
}

// executeWithHooks executes an operation with pre and post hooks.
func executeWithHooks[T any](
	t *realTriage, operationName string, params map[string]interface{}, operation func() (T, error),
) (T, error) {
	var zero T
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}

	if err := t.deps.HookManager.ExecutePreHooks(operationName, ctx); err != nil {
		return zero, err
	}

	var result T
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		result, resultErr = operation()
	}()

	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
		if c, ok := any(result).(counted); ok {
			scanned, flagged := c.Counts()
			ctx.Results[hooks.ResultScanned] = scanned
			ctx.Results[hooks.ResultFlagged] = flagged
		}
	}

	if resultErr != nil {
		if hookErr := t.deps.HookManager.ExecuteErrorHooks(operationName, ctx); hookErr != nil {
			return zero, hookErr
		}
		return zero, resultErr
	}
	if hookErr := t.deps.HookManager.ExecutePostHooks(operationName, ctx); hookErr != nil {
		return zero, hookErr
	}
	return result, nil
}
