//go:build unit

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "output", "stale_issues.csv")

	// Parent directory is created on demand
	err := fs.WriteFileAtomic(target, []byte("repository,issue_number\n"), 0644)
	require.NoError(t, err)

	content, err := fs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "repository,issue_number\n", string(content))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	// Overwrite keeps a single file behind
	require.NoError(t, fs.WriteFileAtomic(target, []byte("new"), 0644))
	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()

	exists, err := fs.Exists(tempDir)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tempDir, "issues.json"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_RemoveAllAndMkdirAll(t *testing.T) {
	fs := NewFS()
	dataDir := filepath.Join(t.TempDir(), "data")

	require.NoError(t, fs.MkdirAll(dataDir, 0755))
	require.NoError(t, fs.WriteFileAtomic(filepath.Join(dataDir, "issues.json"), []byte("{}"), 0644))
	require.NoError(t, fs.RemoveAll(dataDir))

	exists, err := fs.Exists(dataDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := fs.ExpandPath("~/triage/data")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "triage", "data"), expanded)

	expanded, err = fs.ExpandPath("/some/regular/path")
	assert.NoError(t, err)
	assert.Equal(t, "/some/regular/path", expanded)
}
