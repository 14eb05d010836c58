package main

import (
	"fmt"

	"github.com/lerenn/issue-triage/cmd/triage/internal/cli"
	"github.com/lerenn/issue-triage/pkg/forge"
	"github.com/lerenn/issue-triage/pkg/triage"
	"github.com/spf13/cobra"
)

func createCollectCmd() *cobra.Command {
	var source string

	collectCmd := &cobra.Command{
		Use:   "collect [--source gh|api]",
		Short: "Fetch open issues and project items into the data directory",
		Long:  getCollectCommandLongDescription(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			rep, err := session.Triage.Collect(cmd.Context(), triage.CollectOpts{Source: source})
			if err != nil {
				return err
			}

			if !cli.Quiet {
				cli.PrintWarnings(cmd.ErrOrStderr(), rep.Warnings)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Data collection complete! Files saved to %s/\n", rep.DataDir)
				fmt.Fprintf(out, "  - Collection ID: %s\n", rep.Summary.CollectionID)
				fmt.Fprintf(out, "  - Repositories: %d\n", rep.Summary.TotalRepositories)
				fmt.Fprintf(out, "  - Issues: %d\n", rep.Summary.TotalIssues)
				fmt.Fprintf(out, "  - Projects: %d\n", rep.Summary.TotalProjects)
				fmt.Fprintf(out, "  - Project items: %d\n", rep.Summary.TotalProjectItems)
			}
			return session.Close()
		},
	}

	collectCmd.Flags().StringVar(&source, "source", forge.CLIName,
		"Issue source: gh (GitHub CLI) or api (GitHub REST API with $"+cli.TokenEnv+")")

	return collectCmd
}

// getCollectCommandLongDescription returns the long description for the collect command.
func getCollectCommandLongDescription() string {
	return `Fetch the open issues of every configured repository and the items of every
project of the organization, then replace the content of the data directory.

Projects are always listed with the GitHub CLI. Issues come from the GitHub CLI by
default, or from the GitHub REST API with --source api; the API token is read from
the ` + cli.TokenEnv + ` environment variable or a .env file.

Examples:
  triage collect
  triage collect --source api
  triage collect --data-dir /tmp/snapshot`
}
