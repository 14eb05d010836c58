package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/lerenn/issue-triage/pkg/evaluate"
	"github.com/lerenn/issue-triage/pkg/reconcile"
)

// Column sets of each CSV report.
var (
	MissingInfoColumns = []string{"repository", "issue_number", "title", "assignees", "reasons", "url"}
	OverdueColumns     = []string{"repository", "issue_number", "title", "assignees", "target_date", "days_overdue", "status", "priority", "url"}
	StaleColumns       = []string{"repository", "issue_number", "title", "assignees", "days_inactive", "last_updated", "project_status", "url"}
	CandidatesColumns  = []string{"repository", "issue_number", "title", "project", "url"}
)

// MissingInfoCSV encodes missing-info rows. Reasons are pipe-joined since they may contain commas.
func MissingInfoCSV(rows []evaluate.MissingInfoRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Issue.ShortRepository(),
			strconv.Itoa(row.Issue.Number),
			row.Issue.Title,
			strings.Join(row.Issue.AssigneeLogins(), ","),
			strings.Join(row.Reasons, "|"),
			row.Issue.URL,
		})
	}
	return encodeCSV(MissingInfoColumns, records)
}

// OverdueCSV encodes overdue rows.
func OverdueCSV(rows []evaluate.OverdueRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Issue.ShortRepository(),
			strconv.Itoa(row.Issue.Number),
			row.Issue.Title,
			strings.Join(row.Issue.AssigneeLogins(), ","),
			row.TargetDate,
			strconv.Itoa(row.DaysOverdue),
			orNotAvailable(row.Metadata.Status),
			orNotAvailable(row.Metadata.Priority),
			row.Issue.URL,
		})
	}
	return encodeCSV(OverdueColumns, records)
}

// StaleCSV encodes stale rows.
func StaleCSV(rows []evaluate.StaleRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Issue.ShortRepository(),
			strconv.Itoa(row.Issue.Number),
			row.Issue.Title,
			strings.Join(row.Issue.AssigneeLogins(), ","),
			strconv.Itoa(row.DaysInactive),
			row.LastUpdated,
			row.Status,
			row.Issue.URL,
		})
	}
	return encodeCSV(StaleColumns, records)
}

// CandidatesCSV encodes add-to-project candidates.
func CandidatesCSV(candidates []reconcile.Candidate) ([]byte, error) {
	records := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, []string{
			c.Repository,
			strconv.Itoa(c.Number),
			c.Title,
			c.ProjectTitle,
			c.URL,
		})
	}
	return encodeCSV(CandidatesColumns, records)
}

func encodeCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCSVEncode, err)
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCSVEncode, err)
	}
	return buf.Bytes(), nil
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
