package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lerenn/issue-triage/pkg/evaluate"
	"github.com/lerenn/issue-triage/pkg/reconcile"
)

const (
	unassigned   = "Unassigned"
	pausedBadge  = "🔶 **%s**"
	noProjectTag = "⚪ No Project"
	separator    = "------------------------------------------------------------"
)

// markdown accumulates the first write error so renderers stay linear.
type markdown struct {
	w   io.Writer
	err error
}

func (m *markdown) printf(format string, args ...interface{}) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format, args...)
}

func (m *markdown) row(cells ...string) {
	m.printf("| %s |\n", strings.Join(cells, " | "))
}

func (m *markdown) done() error {
	if m.err != nil {
		return fmt.Errorf("%w: %w", ErrMarkdownWrite, m.err)
	}
	return nil
}

// MissingInfoMarkdown prints the flagged issues table and the per-reason summary.
func MissingInfoMarkdown(w io.Writer, r evaluate.MissingInfoResult) error {
	m := &markdown{w: w}

	m.printf("\n## Flagged Issues Report\n\n")
	m.printf("**Total open issues scanned:** %d\n", r.Scanned)
	m.printf("**Issues with missing metadata:** %d\n\n", len(r.Rows))

	if len(r.Rows) == 0 {
		m.printf("🎉 No issues found with missing metadata!\n")
		return m.done()
	}

	m.printf("| Repository | Issue | Title | Assignees | Reasons |\n")
	m.printf("|------------|-------|-------|-----------|---------|\n")
	for _, row := range r.Rows {
		m.row(
			row.Issue.ShortRepository(),
			issueLink(row.Issue.Number, row.Issue.URL),
			cell(truncate(row.Issue.Title, 50)),
			assignees(row.Issue.AssigneeLogins()),
			"• "+strings.Join(row.Reasons, "<br>• "),
		)
	}

	m.printf("\n### Summary by Issue Type\n\n")
	m.printf("| Issue Type | Count |\n")
	m.printf("|------------|-------|\n")
	for _, c := range r.ReasonCounts() {
		m.row(c.Label, fmt.Sprint(c.Count))
	}

	return m.done()
}

// OverdueMarkdown prints the overdue table and its period, repository and priority aggregates.
func OverdueMarkdown(w io.Writer, r evaluate.OverdueResult, now time.Time) error {
	m := &markdown{w: w}

	m.printf("\n## Overdue Issues Report\n\n")
	m.printf("**Date:** %s\n", now.Format("2006-01-02"))
	m.printf("**Total open issues scanned:** %d\n", r.Scanned)
	m.printf("**Issues with target completion dates:** %d\n", r.WithTargetDate)
	m.printf("**Issues past their target date:** %d\n\n", len(r.Rows))

	if len(r.Rows) == 0 {
		m.printf("🎉 No overdue issues found! All issues with target dates are on track.\n")
		return m.done()
	}

	m.printf("| Repository | Issue | Title | Assignees | Target Date | Days Overdue | Status | Priority |\n")
	m.printf("|------------|-------|-------|-----------|-------------|--------------|--------|----------|\n")
	for _, row := range r.Rows {
		m.row(
			row.Issue.ShortRepository(),
			issueLink(row.Issue.Number, row.Issue.URL),
			cell(truncate(row.Issue.Title, 40)),
			assignees(row.Issue.AssigneeLogins()),
			row.TargetDate,
			fmt.Sprint(row.DaysOverdue),
			orNotAvailable(row.Metadata.Status),
			orNotAvailable(row.Metadata.Priority),
		)
	}

	m.printf("\n### Summary Statistics\n\n")
	m.printf("| Overdue Period | Count |\n")
	m.printf("|----------------|-------|\n")
	for _, c := range r.ByPeriod() {
		if c.Count > 0 {
			m.row(c.Label, fmt.Sprint(c.Count))
		}
	}

	m.printf("\n### Overdue Issues by Repository\n\n")
	m.printf("| Repository | Overdue Count |\n")
	m.printf("|------------|---------------|\n")
	for _, c := range r.ByRepository() {
		m.row(c.Label, fmt.Sprint(c.Count))
	}

	m.printf("\n### Overdue Issues by Priority\n\n")
	m.printf("| Priority | Count |\n")
	m.printf("|----------|-------|\n")
	for _, c := range r.ByPriority() {
		m.row(cell(c.Label), fmt.Sprint(c.Count))
	}

	return m.done()
}

// StaleMarkdown prints the stale table and the paused issues summary.
func StaleMarkdown(w io.Writer, r evaluate.StaleResult) error {
	m := &markdown{w: w}

	m.printf("\n## Issues inactive for more than %d days:\n\n", r.ThresholdDays)
	m.printf("| Repository | Issue | Title | Assignees | Days Inactive | Last Updated | Project Status |\n")
	m.printf("|------------|-------|-------|-----------|---------------|--------------|----------------|\n")
	for _, row := range r.Stale {
		m.row(
			row.Issue.ShortRepository(),
			issueLink(row.Issue.Number, row.Issue.URL),
			cell(row.Issue.Title),
			assignees(row.Issue.AssigneeLogins()),
			fmt.Sprint(row.DaysInactive),
			row.LastUpdated,
			statusDisplay(row.Status, r.PausedStatus),
		)
	}

	if len(r.Paused) == 0 {
		return m.done()
	}

	m.printf("\n## Summary of Paused Issues:\n\n")
	m.printf("| Repository | Issue | Title | Assignees | Days Since Last Update |\n")
	m.printf("|------------|-------|-------|-----------|------------------------|\n")
	for _, row := range r.Paused {
		m.row(
			row.Issue.ShortRepository(),
			issueLink(row.Issue.Number, row.Issue.URL),
			cell(row.Issue.Title),
			assignees(row.Issue.AssigneeLogins()),
			fmt.Sprint(row.DaysInactive),
		)
	}
	m.printf("\n**Total paused issues: %d**\n", len(r.Paused))

	return m.done()
}

// ReconcileMarkdown prints the candidates grouped by project, then the dry run
// notice or the outcome of the additions.
func ReconcileMarkdown(w io.Writer, r reconcile.Result) error {
	m := &markdown{w: w}

	if len(r.Candidates) == 0 {
		m.printf("✨ All issues are already in their projects!\n")
		return m.done()
	}

	m.printf("\nFound %d issues to add to projects:\n\n", len(r.Candidates))
	for _, group := range reconcile.GroupByProject(r.Candidates) {
		m.printf("📋 **%s** (%d issues)\n", group.ProjectTitle, len(group.Candidates))
		for _, c := range group.Candidates {
			m.printf("   - %s#%d: %s\n", c.Repository, c.Number, c.Title)
		}
		m.printf("\n")
	}

	m.printf("%s\n", separator)
	if r.DryRun {
		m.printf("🔍 DRY RUN - No changes made\n")
		m.printf("Run with --execute to actually add issues to projects\n")
		return m.done()
	}

	for _, f := range r.Failures {
		m.printf("❌ Failed to add %s#%d to %s: %v\n",
			f.Candidate.Repository, f.Candidate.Number, f.Candidate.ProjectTitle, f.Err)
	}
	m.printf("✅ Complete! Successfully added %d/%d issues to projects\n", r.Succeeded, len(r.Candidates))

	return m.done()
}

func issueLink(number int, url string) string {
	return fmt.Sprintf("[#%d](%s)", number, url)
}

func assignees(logins []string) string {
	if len(logins) == 0 {
		return unassigned
	}
	return strings.Join(logins, ", ")
}

func statusDisplay(status, paused string) string {
	switch status {
	case paused:
		return fmt.Sprintf(pausedBadge, paused)
	case evaluate.StatusNotInProject:
		return noProjectTag
	default:
		return status
	}
}

// truncate shortens titles longer than limit runes to limit-3 runes plus "...".
func truncate(title string, limit int) string {
	runes := []rune(title)
	if len(runes) <= limit {
		return title
	}
	return string(runes[:limit-3]) + "..."
}

// cell escapes pipes so free text cannot break the table.
func cell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}
