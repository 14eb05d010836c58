package evaluate

import (
	"sort"

	"github.com/lerenn/issue-triage/pkg/index"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// Missing-info reasons, in the order they are checked.
const (
	ReasonNoProject    = "Not assigned to a project"
	ReasonNoPriority   = "No priority set"
	ReasonNoStatus     = "No status set"
	ReasonNoAssignee   = "Not assigned to anyone"
	ReasonNoStartDate  = "No start date"
	ReasonNoTargetDate = "No target completion date"
)

// Reasons lists every missing-info reason in check order.
var Reasons = []string{
	ReasonNoProject,
	ReasonNoPriority,
	ReasonNoStatus,
	ReasonNoAssignee,
	ReasonNoStartDate,
	ReasonNoTargetDate,
}

// MissingInfoRow is an issue lacking metadata, with every reason found.
type MissingInfoRow struct {
	Issue    snapshot.RepoIssue
	Metadata index.Metadata
	Reasons  []string
}

// MissingInfoResult is the output of MissingInfo.
type MissingInfoResult struct {
	Rows    []MissingInfoRow
	Scanned int
}

// Count is a label with the number of rows carrying it.
type Count struct {
	Label string
	Count int
}

// MissingInfo flags issues lacking project metadata or assignees.
// Rows are ordered by descending reason count, input order on ties.
func MissingInfo(issues []snapshot.RepoIssue, idx *index.Index) MissingInfoResult {
	result := MissingInfoResult{Scanned: len(issues)}

	for _, issue := range issues {
		metadata, inProject := idx.Lookup(issue.URL)
		reasons := missingReasons(issue, metadata, inProject)
		if len(reasons) == 0 {
			continue
		}
		result.Rows = append(result.Rows, MissingInfoRow{
			Issue:    issue,
			Metadata: metadata,
			Reasons:  reasons,
		})
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return len(result.Rows[i].Reasons) > len(result.Rows[j].Reasons)
	})

	return result
}

func missingReasons(issue snapshot.RepoIssue, m index.Metadata, inProject bool) []string {
	var reasons []string

	if !inProject {
		reasons = append(reasons, ReasonNoProject)
	} else {
		if m.Priority == "" {
			reasons = append(reasons, ReasonNoPriority)
		}
		if m.Status == "" {
			reasons = append(reasons, ReasonNoStatus)
		}
	}

	if len(issue.Assignees) == 0 {
		reasons = append(reasons, ReasonNoAssignee)
	}

	if inProject {
		if m.StartDate == "" {
			reasons = append(reasons, ReasonNoStartDate)
		}
		if m.TargetDate == "" {
			reasons = append(reasons, ReasonNoTargetDate)
		}
	}

	return reasons
}

// ReasonCounts counts rows per reason, by descending count then check order.
func (r MissingInfoResult) ReasonCounts() []Count {
	counts := make(map[string]int, len(Reasons))
	for _, row := range r.Rows {
		for _, reason := range row.Reasons {
			counts[reason]++
		}
	}

	out := make([]Count, 0, len(counts))
	for _, reason := range Reasons {
		if counts[reason] > 0 {
			out = append(out, Count{Label: reason, Count: counts[reason]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
