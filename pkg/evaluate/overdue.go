package evaluate

import (
	"sort"
	"time"

	"github.com/lerenn/issue-triage/pkg/index"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// NoPriority labels overdue issues without a priority in the aggregates.
const NoPriority = "No Priority"

// OverduePeriods are the aggregate buckets, in display order.
var OverduePeriods = []string{"1-7 days", "8-30 days", "31-90 days", "90+ days"}

// OverdueRow is an issue past its target date.
type OverdueRow struct {
	Issue       snapshot.RepoIssue
	Metadata    index.Metadata
	TargetDate  string
	DaysOverdue int
}

// OverdueResult is the output of Overdue.
type OverdueResult struct {
	Rows           []OverdueRow
	Scanned        int
	WithTargetDate int
}

// Overdue flags issues whose target date has passed.
// Issues without a target date are ignored; unparseable dates are reported to diag.
func Overdue(issues []snapshot.RepoIssue, idx *index.Index, now time.Time, diag logger.Diagnostics) OverdueResult {
	result := OverdueResult{Scanned: len(issues)}

	for _, issue := range issues {
		metadata, ok := idx.Lookup(issue.URL)
		if !ok || metadata.TargetDate == "" {
			continue
		}
		result.WithTargetDate++

		target, err := ParseDate(metadata.TargetDate)
		if err != nil {
			diag.Warn("could not parse target date",
				"url", issue.URL, "value", metadata.TargetDate)
			continue
		}

		if !IsOverdue(target, now) {
			continue
		}
		result.Rows = append(result.Rows, OverdueRow{
			Issue:       issue,
			Metadata:    metadata,
			TargetDate:  metadata.TargetDate,
			DaysOverdue: DaysOverdue(target, now),
		})
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].DaysOverdue > result.Rows[j].DaysOverdue
	})

	return result
}

// Period returns the aggregate bucket of a positive days-overdue value.
func Period(days int) string {
	switch {
	case days <= 7:
		return OverduePeriods[0]
	case days <= 30:
		return OverduePeriods[1]
	case days <= 90:
		return OverduePeriods[2]
	default:
		return OverduePeriods[3]
	}
}

// ByPeriod counts rows per bucket, in bucket order, including empty buckets.
func (r OverdueResult) ByPeriod() []Count {
	counts := make(map[string]int, len(OverduePeriods))
	for _, row := range r.Rows {
		counts[Period(row.DaysOverdue)]++
	}

	out := make([]Count, 0, len(OverduePeriods))
	for _, period := range OverduePeriods {
		out = append(out, Count{Label: period, Count: counts[period]})
	}
	return out
}

// ByRepository counts rows per repository short name.
func (r OverdueResult) ByRepository() []Count {
	return countBy(r.Rows, func(row OverdueRow) string {
		return row.Issue.ShortRepository()
	})
}

// ByPriority counts rows per priority, NoPriority when missing.
func (r OverdueResult) ByPriority() []Count {
	return countBy(r.Rows, func(row OverdueRow) string {
		if row.Metadata.Priority == "" {
			return NoPriority
		}
		return row.Metadata.Priority
	})
}

// countBy counts rows per label, by descending count then first appearance.
func countBy(rows []OverdueRow, label func(OverdueRow) string) []Count {
	var out []Count
	positions := make(map[string]int)
	for _, row := range rows {
		l := label(row)
		if i, ok := positions[l]; ok {
			out[i].Count++
			continue
		}
		positions[l] = len(out)
		out = append(out, Count{Label: l, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
