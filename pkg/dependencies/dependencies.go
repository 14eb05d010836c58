// Package dependencies provides a centralized dependency container for the triage application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"
	"time"

	"github.com/lerenn/issue-triage/pkg/config"
	"github.com/lerenn/issue-triage/pkg/forge"
	"github.com/lerenn/issue-triage/pkg/fs"
	"github.com/lerenn/issue-triage/pkg/gh"
	"github.com/lerenn/issue-triage/pkg/hooks"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/metrics"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrGHMissing          = errors.New("gh dependency is required but not set")
	ErrStoreMissing       = errors.New("snapshot store dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrForgesMissing      = errors.New("issue sources dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrMetricsMissing     = errors.New("metrics dependency is required but not set")
	ErrClockMissing       = errors.New("clock dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	GH          gh.GH
	Store       snapshot.Store
	Config      config.Manager
	Forges      forge.ManagerInterface
	Logger      logger.Logger
	HookManager hooks.HookManagerInterface
	Metrics     metrics.Provider
	// Clock returns the reference time of evaluations.
	Clock func() time.Time
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	fileSystem := fs.NewFS()
	return &Dependencies{
		FS:          fileSystem,
		GH:          gh.NewGH(),
		Store:       snapshot.NewStore(fileSystem),
		Logger:      logger.NewNoopLogger(),
		HookManager: hooks.NewHookManager(),
		Metrics:     metrics.NewNoopProvider(),
		Clock:       time.Now,
		// Config and Forges depend on the command line and the environment,
		// they are set via With* methods.
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGH sets the gh CLI wrapper and returns the instance for chaining.
func (d *Dependencies) WithGH(g gh.GH) *Dependencies {
	d.GH = g
	return d
}

// WithStore sets the snapshot store and returns the instance for chaining.
func (d *Dependencies) WithStore(store snapshot.Store) *Dependencies {
	d.Store = store
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithForges sets the issue sources and returns the instance for chaining.
func (d *Dependencies) WithForges(forges forge.ManagerInterface) *Dependencies {
	d.Forges = forges
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithMetrics sets the metrics provider and returns the instance for chaining.
func (d *Dependencies) WithMetrics(provider metrics.Provider) *Dependencies {
	d.Metrics = provider
	return d
}

// WithClock sets the clock and returns the instance for chaining.
func (d *Dependencies) WithClock(clock func() time.Time) *Dependencies {
	d.Clock = clock
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.GH, ErrGHMissing},
		{d.Store, ErrStoreMissing},
		{d.Config, ErrConfigMissing},
		{d.Forges, ErrForgesMissing},
		{d.Logger, ErrLoggerMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.Metrics, ErrMetricsMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}

	// A nil func stored in an interface{} is not nil.
	if d.Clock == nil {
		return ErrClockMissing
	}
	return nil
}
