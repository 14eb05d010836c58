package main

import (
	"fmt"

	"github.com/lerenn/issue-triage/cmd/triage/internal/cli"
	"github.com/lerenn/issue-triage/pkg/report"
	"github.com/lerenn/issue-triage/pkg/triage"
	"github.com/spf13/cobra"
)

func createAddToProjectsCmd() *cobra.Command {
	var execute bool
	var filterRepo string

	addCmd := &cobra.Command{
		Use:   "add-to-projects [--execute] [--filter-repo <name>]",
		Short: "Add issues to the project their repository maps to",
		Long:  getAddToProjectsCommandLongDescription(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			rep, err := session.Triage.AddToProjects(cmd.Context(), triage.AddToProjectsOpts{
				Execute:          execute,
				FilterRepository: filterRepo,
			})
			if err != nil {
				return err
			}

			if !cli.Quiet {
				cli.PrintWarnings(cmd.ErrOrStderr(), rep.Warnings)
				if err := report.ReconcileMarkdown(cmd.OutOrStdout(), rep.Result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nCandidates exported to %s\n", rep.CSVPath)
			}
			return session.Close()
		},
	}

	addCmd.Flags().BoolVar(&execute, "execute", false, "Actually add issues to projects (default is dry run)")
	addCmd.Flags().StringVar(&filterRepo, "filter-repo", "", "Only process issues from a specific repository")

	return addCmd
}

// getAddToProjectsCommandLongDescription returns the long description for the add-to-projects command.
func getAddToProjectsCommandLongDescription() string {
	return `Find the issues missing from the project their repository maps to in the
project_mapping configuration, and add them with 'gh project item-add'.

Nothing is changed unless --execute is given. Repositories without a mapping, or
mapped to an unknown project, are skipped with a warning.

Examples:
  triage add-to-projects
  triage add-to-projects --filter-repo bills
  triage add-to-projects --execute`
}
