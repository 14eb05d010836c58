package main

import (
	"fmt"

	"github.com/lerenn/issue-triage/cmd/triage/internal/cli"
	"github.com/lerenn/issue-triage/pkg/triage"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write the default configuration",
		Long: `Write the default configuration to ~/.triage/config.yaml, or to the path given with --config.

Flags:
  --force   Overwrite an existing configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			if err := session.Triage.Init(triage.InitOpts{Force: force}); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", cli.GetConfigPath())
			}
			return session.Close()
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")

	return initCmd
}
