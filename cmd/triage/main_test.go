//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	rootCmd := createRootCmd()

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, expected := range []string{
		"init", "collect", "missing-info", "overdue", "stale", "add-to-projects", "suggest-mappings",
	} {
		assert.Contains(t, names, expected)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	rootCmd := createRootCmd()

	for _, flag := range []string{"quiet", "verbose", "config", "data-dir", "output-dir", "metrics-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
	assert.Equal(t, "q", rootCmd.PersistentFlags().Lookup("quiet").Shorthand)
	assert.Equal(t, "c", rootCmd.PersistentFlags().Lookup("config").Shorthand)
}

func TestAddToProjectsCmd_DryRunByDefault(t *testing.T) {
	cmd := createAddToProjectsCmd()

	execute := cmd.Flags().Lookup("execute")
	require.NotNil(t, execute)
	assert.Equal(t, "false", execute.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("filter-repo"))
}

func TestCollectCmd_DefaultSource(t *testing.T) {
	cmd := createCollectCmd()

	source := cmd.Flags().Lookup("source")
	require.NotNil(t, source)
	assert.Equal(t, "gh", source.DefValue)
}

func TestStaleCmd_RejectsNegativeDays(t *testing.T) {
	cmd := createStaleCmd()
	cmd.SetArgs([]string{"--days=-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--days cannot be negative")
}
