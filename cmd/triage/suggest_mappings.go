package main

import (
	"fmt"

	"github.com/lerenn/issue-triage/cmd/triage/internal/cli"
	"github.com/lerenn/issue-triage/pkg/mapping"
	"github.com/spf13/cobra"
)

func createSuggestMappingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest-mappings",
		Short: "Suggest a project for each repository from existing project items",
		Long: `Count, for each repository, how many of its issues each project holds and
suggest the most frequent one. The suggestions are printed as a project_mapping
block ready to paste into the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			rep, err := session.Triage.SuggestMappings()
			if err != nil {
				return err
			}

			if !cli.Quiet {
				cli.PrintWarnings(cmd.ErrOrStderr(), rep.Warnings)
				out := cmd.OutOrStdout()
				if err := mapping.RenderText(out, rep.Suggestions); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nSuggested mapping:\n\n%s", rep.YAML)
				printMappingChanges(cmd, rep.Suggestions, rep.Current)
			}
			return session.Close()
		},
	}
}

// printMappingChanges lists the suggestions differing from the configured mapping.
func printMappingChanges(cmd *cobra.Command, suggestions []mapping.Suggestion, current map[string]string) {
	var changes []string
	for _, s := range suggestions {
		if s.Suggested == "" || current[s.Repository] == s.Suggested {
			continue
		}
		was := current[s.Repository]
		if was == "" {
			was = "unmapped"
		}
		changes = append(changes, fmt.Sprintf("  %s: %s -> %s", s.Repository, was, s.Suggested))
	}
	if len(changes) == 0 {
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nDiffers from the configured mapping:\n")
	for _, c := range changes {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}
}
