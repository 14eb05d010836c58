package triage

import (
	"context"

	"github.com/lerenn/issue-triage/pkg/collect"
	"github.com/lerenn/issue-triage/pkg/forge"
	"github.com/lerenn/issue-triage/pkg/gh"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	"github.com/lerenn/issue-triage/pkg/triage/consts"
)

// CollectOpts contains optional parameters for Collect.
type CollectOpts struct {
	// Source is the issue source name, gh when empty.
	Source string
}

// CollectReport is the outcome of a collection.
type CollectReport struct {
	Summary  snapshot.Summary
	DataDir  string
	Warnings []logger.Entry
}

// Collect fetches open issues and project items and replaces the cached snapshot.
func (t *realTriage) Collect(ctx context.Context, opts ...CollectOpts) (*CollectReport, error) {
	var opt CollectOpts
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Source == "" {
		opt.Source = forge.CLIName
	}

	params := map[string]interface{}{
		"source": opt.Source,
	}

	return executeWithHooks(t, consts.Collect, params, func() (*CollectReport, error) {
		return t.performCollect(ctx, opt)
	})
}

func (t *realTriage) performCollect(ctx context.Context, opts CollectOpts) (*CollectReport, error) {
	cfg, err := t.getConfig()
	if err != nil {
		return nil, err
	}

	// Projects are always listed with gh, whatever the issue source.
	if err := gh.Check(ctx, t.deps.GH); err != nil {
		return nil, err
	}

	source, err := t.deps.Forges.GetForge(opts.Source)
	if err != nil {
		return nil, err
	}

	diag := logger.NewCollector(t.deps.Logger)
	collector := collect.NewCollector(source, t.deps.GH, t.deps.Store)
	_, summary, err := collector.Collect(ctx, collect.Options{
		Organization: cfg.Organization,
		Repositories: cfg.Repositories,
		Limit:        cfg.FetchLimit,
		DataDir:      cfg.DataDir,
	}, t.deps.Clock(), diag)
	if err != nil {
		return nil, err
	}

	return &CollectReport{
		Summary:  summary,
		DataDir:  cfg.DataDir,
		Warnings: diag.Warnings(),
	}, nil
}
