// Package forge provides the sources open issues are collected from.
package forge

import (
	"context"
	"fmt"
	"sort"

	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/snapshot"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge lists open issues of a repository.
type Forge interface {
	// Name returns the name of the issue source.
	Name() string

	// ListOpenIssues returns at most limit open issues of repo (owner/name).
	ListOpenIssues(ctx context.Context, repo string, limit int) ([]snapshot.Issue, error)
}

// ManagerInterface defines the interface for issue source management.
type ManagerInterface interface {
	// GetForge returns the issue source registered under name.
	GetForge(name string) (Forge, error)
	// Names returns the registered source names, sorted.
	Names() []string
}

// Manager holds the registered issue sources.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a manager with the given sources registered.
func NewManager(logger logger.Logger, forges ...Forge) *Manager {
	m := &Manager{
		forges: make(map[string]Forge, len(forges)),
		logger: logger,
	}
	for _, f := range forges {
		m.Register(f)
	}
	return m
}

// Register adds a source, replacing any source with the same name.
func (m *Manager) Register(f Forge) {
	m.logger.Logf("Registering issue source %s", f.Name())
	m.forges[f.Name()] = f
}

// GetForge returns the issue source registered under name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// Names returns the registered source names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.forges))
	for name := range m.forges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
