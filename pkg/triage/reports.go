package triage

import (
	"time"

	"github.com/lerenn/issue-triage/pkg/evaluate"
	"github.com/lerenn/issue-triage/pkg/index"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/report"
	"github.com/lerenn/issue-triage/pkg/triage/consts"
)

// ReportOpts contains optional parameters for report operations.
type ReportOpts struct {
	// Repository restricts the report to one repository, by short or full name.
	Repository string
}

// StaleOpts contains optional parameters for Stale.
type StaleOpts struct {
	Repository string
	// ThresholdDays overrides the configured threshold when set.
	ThresholdDays *int
}

// MissingInfoReport is the outcome of MissingInfo.
type MissingInfoReport struct {
	Result   evaluate.MissingInfoResult
	CSVPath  string
	Warnings []logger.Entry
}

// Counts returns the scanned and flagged issue counts.
func (r MissingInfoReport) Counts() (int, int) {
	return r.Result.Scanned, len(r.Result.Rows)
}

// OverdueReport is the outcome of Overdue.
type OverdueReport struct {
	Result      evaluate.OverdueResult
	GeneratedAt time.Time
	CSVPath     string
	Warnings    []logger.Entry
}

// Counts returns the scanned and flagged issue counts.
func (r OverdueReport) Counts() (int, int) {
	return r.Result.Scanned, len(r.Result.Rows)
}

// StaleReport is the outcome of Stale.
type StaleReport struct {
	Result   evaluate.StaleResult
	CSVPath  string
	Warnings []logger.Entry
}

// Counts returns the scanned and stale issue counts.
func (r StaleReport) Counts() (int, int) {
	return r.Result.Scanned, len(r.Result.Stale)
}

func firstReportOpts(opts []ReportOpts) ReportOpts {
	if len(opts) > 0 {
		return opts[0]
	}
	return ReportOpts{}
}

// MissingInfo flags issues lacking tracking information.
func (t *realTriage) MissingInfo(opts ...ReportOpts) (*MissingInfoReport, error) {
	opt := firstReportOpts(opts)
	params := map[string]interface{}{
		"repository": opt.Repository,
	}

	return executeWithHooks(t, consts.MissingInfo, params, func() (*MissingInfoReport, error) {
		diag := logger.NewCollector(t.deps.Logger)
		cfg, snap, err := t.loadSnapshot(diag)
		if err != nil {
			return nil, err
		}

		idx := index.Build(snap.Projects, diag)
		issues := filterRepository(snap.AllIssues(cfg.Repositories), opt.Repository)
		result := evaluate.MissingInfo(issues, idx)

		data, err := report.MissingInfoCSV(result.Rows)
		if err != nil {
			return nil, err
		}
		path, err := t.writeReport(cfg, report.MissingInfoFile, data)
		if err != nil {
			return nil, err
		}

		return &MissingInfoReport{Result: result, CSVPath: path, Warnings: diag.Warnings()}, nil
	})
}

// Overdue flags issues whose target date has passed.
func (t *realTriage) Overdue(opts ...ReportOpts) (*OverdueReport, error) {
	opt := firstReportOpts(opts)
	params := map[string]interface{}{
		"repository": opt.Repository,
	}

	return executeWithHooks(t, consts.Overdue, params, func() (*OverdueReport, error) {
		diag := logger.NewCollector(t.deps.Logger)
		cfg, snap, err := t.loadSnapshot(diag)
		if err != nil {
			return nil, err
		}

		now := t.deps.Clock().UTC()
		idx := index.Build(snap.Projects, diag)
		issues := filterRepository(snap.AllIssues(cfg.Repositories), opt.Repository)
		result := evaluate.Overdue(issues, idx, now, diag)

		data, err := report.OverdueCSV(result.Rows)
		if err != nil {
			return nil, err
		}
		path, err := t.writeReport(cfg, report.OverdueFile, data)
		if err != nil {
			return nil, err
		}

		return &OverdueReport{Result: result, GeneratedAt: now, CSVPath: path, Warnings: diag.Warnings()}, nil
	})
}

// Stale flags issues inactive for more than the threshold and lists paused issues.
func (t *realTriage) Stale(opts ...StaleOpts) (*StaleReport, error) {
	var opt StaleOpts
	if len(opts) > 0 {
		opt = opts[0]
	}
	params := map[string]interface{}{
		"repository": opt.Repository,
	}
	if opt.ThresholdDays != nil {
		params["thresholdDays"] = *opt.ThresholdDays
	}

	return executeWithHooks(t, consts.Stale, params, func() (*StaleReport, error) {
		diag := logger.NewCollector(t.deps.Logger)
		cfg, snap, err := t.loadSnapshot(diag)
		if err != nil {
			return nil, err
		}

		threshold := cfg.StaleThresholdDays
		if opt.ThresholdDays != nil {
			threshold = *opt.ThresholdDays
		}

		idx := index.Build(snap.Projects, diag)
		issues := filterRepository(snap.AllIssues(cfg.Repositories), opt.Repository)
		result := evaluate.Stale(issues, idx, t.deps.Clock().UTC(), evaluate.StaleOptions{
			ThresholdDays: threshold,
			PausedStatus:  cfg.PausedStatus,
		}, diag)

		data, err := report.StaleCSV(result.Stale)
		if err != nil {
			return nil, err
		}
		path, err := t.writeReport(cfg, report.StaleFile, data)
		if err != nil {
			return nil, err
		}

		return &StaleReport{Result: result, CSVPath: path, Warnings: diag.Warnings()}, nil
	})
}
