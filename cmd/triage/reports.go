package main

import (
	"fmt"

	"github.com/lerenn/issue-triage/cmd/triage/internal/cli"
	"github.com/lerenn/issue-triage/pkg/report"
	"github.com/lerenn/issue-triage/pkg/triage"
	"github.com/spf13/cobra"
)

func createMissingInfoCmd() *cobra.Command {
	var repository string

	missingInfoCmd := &cobra.Command{
		Use:   "missing-info [--repo <name>]",
		Short: "Flag issues without project, priority, status, assignee or dates",
		Long: `Flag the open issues lacking a project, a priority, a status, an assignee,
a start date or a target completion date.

The table is printed as Markdown and saved to ` + report.MissingInfoFile + ` in the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			rep, err := session.Triage.MissingInfo(triage.ReportOpts{Repository: repository})
			if err != nil {
				return err
			}

			if !cli.Quiet {
				cli.PrintWarnings(cmd.ErrOrStderr(), rep.Warnings)
				if err := report.MissingInfoMarkdown(cmd.OutOrStdout(), rep.Result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nResults exported to %s\n", rep.CSVPath)
			}
			return session.Close()
		},
	}

	missingInfoCmd.Flags().StringVarP(&repository, "repo", "r", "", "Only report on this repository")

	return missingInfoCmd
}

func createOverdueCmd() *cobra.Command {
	var repository string

	overdueCmd := &cobra.Command{
		Use:   "overdue [--repo <name>]",
		Short: "Flag issues past their target completion date",
		Long: `Flag the open issues whose target completion date has passed, with a summary
by overdue period, repository and priority.

The table is printed as Markdown and saved to ` + report.OverdueFile + ` in the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			rep, err := session.Triage.Overdue(triage.ReportOpts{Repository: repository})
			if err != nil {
				return err
			}

			if !cli.Quiet {
				cli.PrintWarnings(cmd.ErrOrStderr(), rep.Warnings)
				if err := report.OverdueMarkdown(cmd.OutOrStdout(), rep.Result, rep.GeneratedAt); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nResults exported to %s\n", rep.CSVPath)
			}
			return session.Close()
		},
	}

	overdueCmd.Flags().StringVarP(&repository, "repo", "r", "", "Only report on this repository")

	return overdueCmd
}

func createStaleCmd() *cobra.Command {
	var repository string
	var days int

	staleCmd := &cobra.Command{
		Use:   "stale [--repo <name>] [--days <n>]",
		Short: "Flag issues without recent activity and list paused issues",
		Long: `Flag the open issues not updated for more than the configured number of days,
and list the issues whose project status is the paused status.

The stale table is printed as Markdown and saved to ` + report.StaleFile + ` in the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := triage.StaleOpts{Repository: repository}
			if cmd.Flags().Changed("days") {
				if days < 0 {
					return fmt.Errorf("--days cannot be negative: %d", days)
				}
				opts.ThresholdDays = &days
			}

			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			rep, err := session.Triage.Stale(opts)
			if err != nil {
				return err
			}

			if !cli.Quiet {
				cli.PrintWarnings(cmd.ErrOrStderr(), rep.Warnings)
				if err := report.StaleMarkdown(cmd.OutOrStdout(), rep.Result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nResults exported to %s\n", rep.CSVPath)
			}
			return session.Close()
		},
	}

	staleCmd.Flags().StringVarP(&repository, "repo", "r", "", "Only report on this repository")
	staleCmd.Flags().IntVarP(&days, "days", "d", 0, "Override the configured inactivity threshold")

	return staleCmd
}
