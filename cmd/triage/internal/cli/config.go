// Package cli provides common configuration and utility functions for the triage CLI.
package cli

import (
	"os"
	"path/filepath"

	"github.com/lerenn/issue-triage/pkg/config"
	"github.com/lerenn/issue-triage/pkg/fs"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// DataDir overrides the configured snapshot directory.
	DataDir string
	// OutputDir overrides the configured report directory.
	OutputDir string
	// MetricsFile receives Prometheus textfile metrics when set.
	MetricsFile string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// GetConfigPath returns the config file path in use.
func GetConfigPath() string {
	if ConfigPath != "" {
		path, err := fs.NewFS().ExpandPath(ConfigPath)
		if err != nil {
			return ConfigPath
		}
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".triage", "config.yaml")
}
