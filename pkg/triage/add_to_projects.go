package triage

import (
	"context"

	"github.com/lerenn/issue-triage/pkg/gh"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/metrics"
	"github.com/lerenn/issue-triage/pkg/reconcile"
	"github.com/lerenn/issue-triage/pkg/report"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	"github.com/lerenn/issue-triage/pkg/triage/consts"
)

// AddToProjectsOpts contains optional parameters for AddToProjects.
type AddToProjectsOpts struct {
	// Execute performs the additions; the default is a dry run.
	Execute bool
	// FilterRepository restricts the run to one repository short name.
	FilterRepository string
}

// AddToProjectsReport is the outcome of AddToProjects.
type AddToProjectsReport struct {
	Result   reconcile.Result
	Scanned  int
	CSVPath  string
	Warnings []logger.Entry
}

// Counts returns the scanned issue count and the number of candidates.
func (r AddToProjectsReport) Counts() (int, int) {
	return r.Scanned, len(r.Result.Candidates)
}

// AddToProjects adds the issues missing from their repository's project.
func (t *realTriage) AddToProjects(ctx context.Context, opts ...AddToProjectsOpts) (*AddToProjectsReport, error) {
	var opt AddToProjectsOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	params := map[string]interface{}{
		"execute":          opt.Execute,
		"filterRepository": opt.FilterRepository,
	}

	return executeWithHooks(t, consts.AddToProjects, params, func() (*AddToProjectsReport, error) {
		return t.performAddToProjects(ctx, opt)
	})
}

func (t *realTriage) performAddToProjects(ctx context.Context, opts AddToProjectsOpts) (*AddToProjectsReport, error) {
	if err := gh.Check(ctx, t.deps.GH); err != nil {
		return nil, err
	}

	diag := logger.NewCollector(t.deps.Logger)
	cfg, snap, err := t.loadSnapshot(diag)
	if err != nil {
		return nil, err
	}

	if opts.FilterRepository != "" {
		t.VerbosePrint("Filtering to repository: %s", opts.FilterRepository)
	}

	candidates := reconcile.FindCandidates(snap, cfg.ProjectMapping, opts.FilterRepository, cfg.Repositories, diag)
	result := reconcile.Apply(ctx, t.deps.GH, cfg.Organization, candidates, !opts.Execute, t.deps.Logger)

	for i := 0; i < result.Succeeded; i++ {
		t.deps.Metrics.IncreaseProjectItemAdds(metrics.ResultSuccess)
	}
	for range result.Failures {
		t.deps.Metrics.IncreaseProjectItemAdds(metrics.ResultFailure)
	}

	data, err := report.CandidatesCSV(candidates)
	if err != nil {
		return nil, err
	}
	path, err := t.writeReport(cfg, report.CandidatesFile, data)
	if err != nil {
		return nil, err
	}

	return &AddToProjectsReport{
		Result:   result,
		Scanned:  scannedIssues(snap, opts.FilterRepository),
		CSVPath:  path,
		Warnings: diag.Warnings(),
	}, nil
}

func scannedIssues(snap *snapshot.Snapshot, repoFilter string) int {
	count := 0
	for fullName, issues := range snap.Issues.Repositories {
		if repoFilter == "" || snapshot.ShortName(fullName) == repoFilter {
			count += len(issues)
		}
	}
	return count
}
