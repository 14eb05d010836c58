package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lerenn/issue-triage/configs"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Organization owning the repositories and projects. Informational for
	// reports, used as --owner for gh project commands.
	Organization string `yaml:"organization"`
	// Repositories are the tracked repository full names (owner/name), in report order.
	Repositories []string `yaml:"repositories"`
	// ProjectMapping maps a repository short name to the title of its project.
	ProjectMapping map[string]string `yaml:"project_mapping"`
	// DataDir holds the cached snapshot files.
	DataDir string `yaml:"data_dir"`
	// OutputDir receives the CSV reports.
	OutputDir string `yaml:"output_dir"`
	// StaleThresholdDays is the inactivity (strictly greater) that flags an issue as stale.
	StaleThresholdDays int `yaml:"stale_threshold_days"`
	// PausedStatus is the project status value collected into the paused list.
	PausedStatus string `yaml:"paused_status"`
	// FetchLimit is passed as --limit to gh list commands.
	FetchLimit int `yaml:"fetch_limit"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Organization) == "" {
		return ErrOrganizationEmpty
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.OutputDir == "" {
		return ErrOutputDirEmpty
	}
	if c.StaleThresholdDays < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStaleThreshold, c.StaleThresholdDays)
	}
	if c.FetchLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFetchLimit, c.FetchLimit)
	}
	for _, repo := range c.Repositories {
		parts := strings.Split(repo, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("%w: %q", ErrInvalidRepositoryName, repo)
		}
	}
	return nil
}

// ProjectFor returns the project title mapped to a repository short name.
func (c *Config) ProjectFor(repoShortName string) (string, bool) {
	title, ok := c.ProjectMapping[repoShortName]
	return title, ok && title != ""
}

// applyDefaults fills zero values that have a sensible default.
func (c *Config) applyDefaults() {
	if c.PausedStatus == "" {
		c.PausedStatus = DefaultPausedStatus
	}
	if c.FetchLimit == 0 {
		c.FetchLimit = DefaultFetchLimit
	}
	if c.ProjectMapping == nil {
		c.ProjectMapping = map[string]string{}
	}
}

// expandTildes expands ~ in directory settings.
func (c *Config) expandTildes() error {
	for _, dir := range []*string{&c.DataDir, &c.OutputDir} {
		if !strings.HasPrefix(*dir, "~") {
			continue
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to determine home directory: %w", err)
		}
		*dir = filepath.Join(homeDir, strings.TrimPrefix(*dir, "~"))
	}
	return nil
}

// Parse decodes, completes and validates a YAML configuration.
func Parse(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	config.applyDefaults()

	if err := config.expandTildes(); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns the configuration embedded in the binary.
func Default() Config {
	config, err := Parse(configs.DefaultConfigYAML)
	if err != nil {
		// The embedded file is part of the build; failing here is a packaging bug.
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return config
}
