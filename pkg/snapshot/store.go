package snapshot

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lerenn/issue-triage/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=store.go -destination=mocks/store.gen.go -package=mocks

// Store reads and writes snapshots in a data directory.
type Store interface {
	// Load reads issues.json and projects.json. Both must exist.
	Load(dataDir string) (*Snapshot, error)
	// Reset removes and recreates the data directory.
	Reset(dataDir string) error
	// Save writes issues.json, projects.json and summary.json.
	Save(dataDir string, snap *Snapshot, summary Summary) error
}

type realStore struct {
	fs fs.FS
}

// NewStore creates a Store on top of the given file system.
func NewStore(fileSystem fs.FS) Store {
	return &realStore{fs: fileSystem}
}

// Load reads both snapshot documents.
func (s *realStore) Load(dataDir string) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := s.readDocument(filepath.Join(dataDir, IssuesFile), ErrIssuesSnapshotNotFound, &snap.Issues); err != nil {
		return nil, err
	}
	if err := s.readDocument(filepath.Join(dataDir, ProjectsFile), ErrProjectsSnapshotNotFound, &snap.Projects); err != nil {
		return nil, err
	}

	if snap.Issues.Repositories == nil {
		snap.Issues.Repositories = map[string][]Issue{}
	}
	if snap.Projects.ProjectItems == nil {
		snap.Projects.ProjectItems = map[string]ProjectItems{}
	}

	return snap, nil
}

func (s *realStore) readDocument(path string, notFound error, out interface{}) error {
	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", notFound, path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSnapshotMalformed, path, err)
	}
	return nil
}

// Reset removes and recreates the data directory.
func (s *realStore) Reset(dataDir string) error {
	if err := s.fs.RemoveAll(dataDir); err != nil {
		return fmt.Errorf("%w: clearing %s: %w", ErrSnapshotWrite, dataDir, err)
	}
	if err := s.fs.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrSnapshotWrite, dataDir, err)
	}
	return nil
}

// Save writes the snapshot documents and the summary.
func (s *realStore) Save(dataDir string, snap *Snapshot, summary Summary) error {
	documents := []struct {
		name string
		doc  interface{}
	}{
		{IssuesFile, snap.Issues},
		{ProjectsFile, snap.Projects},
		{SummaryFile, summary},
	}

	for _, d := range documents {
		data, err := json.MarshalIndent(d.doc, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %w", ErrSnapshotWrite, d.name, err)
		}
		if err := s.fs.WriteFileAtomic(filepath.Join(dataDir, d.name), data, 0644); err != nil {
			return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
		}
	}
	return nil
}
