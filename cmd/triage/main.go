// Package main provides the command-line interface for the triage application.
package main

import (
	"log"

	"github.com/lerenn/issue-triage/cmd/triage/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := createRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "triage",
		Short: "Issue triage - GitHub issues and projects reconciliation",
		Long: `Reports on the open issues of an organization from a cached snapshot of its
repositories and projects, and adds issues to the project of their repository.

Run 'triage collect' to refresh the snapshot before running the reports.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&cli.DataDir, "data-dir", "", "Override the snapshot directory")
	rootCmd.PersistentFlags().StringVar(&cli.OutputDir, "output-dir", "", "Override the CSV report directory")
	rootCmd.PersistentFlags().StringVar(&cli.MetricsFile, "metrics-file", "",
		"Write Prometheus textfile metrics of the run to this file")

	rootCmd.AddCommand(
		createInitCmd(),
		createCollectCmd(),
		createMissingInfoCmd(),
		createOverdueCmd(),
		createStaleCmd(),
		createAddToProjectsCmd(),
		createSuggestMappingsCmd(),
	)

	return rootCmd
}
