//go:build unit

package gh

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []call
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func TestGH_Version(t *testing.T) {
	runner := &fakeRunner{stdout: "gh version 2.45.0 (2024-03-04)\nhttps://github.com/cli/cli/releases/tag/v2.45.0\n"}
	g := NewGHWithRunner(runner.run)

	version, err := g.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gh version 2.45.0 (2024-03-04)", version)
	assert.Equal(t, []call{{name: "gh", args: []string{"--version"}}}, runner.calls)
}

func TestGH_NotInstalled(t *testing.T) {
	runner := &fakeRunner{err: &exec.Error{Name: "gh", Err: exec.ErrNotFound}}
	g := NewGHWithRunner(runner.run)

	_, err := g.Version(context.Background())
	assert.ErrorIs(t, err, ErrGHNotInstalled)
}

func TestGH_CommandFailed_IncludesStderr(t *testing.T) {
	runner := &fakeRunner{stderr: "could not resolve to a Repository\n", err: errors.New("exit status 1")}
	g := NewGHWithRunner(runner.run)

	_, err := g.IssueList(context.Background(), "MaxMillerLab/missing", 1000)
	require.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, err.Error(), "could not resolve to a Repository")
	assert.Contains(t, err.Error(), "--repo MaxMillerLab/missing")
}

func TestGH_IssueList(t *testing.T) {
	runner := &fakeRunner{stdout: `[{"number": 5, "title": "Fix parser", "url": "https://github.com/MaxMillerLab/bills/issues/5",
		"updatedAt": "2024-03-01T10:00:00Z", "assignees": [{"login": "alice"}], "labels": [], "comments": []}]`}
	g := NewGHWithRunner(runner.run)

	issues, err := g.IssueList(context.Background(), "MaxMillerLab/bills", 1000)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 5, issues[0].Number)
	assert.Equal(t, []string{"alice"}, issues[0].AssigneeLogins())

	assert.Equal(t,
		"issue list --repo MaxMillerLab/bills --state open --json "+IssueFields+" --limit 1000",
		strings.Join(runner.calls[0].args, " "))
}

func TestGH_IssueList_BadJSON(t *testing.T) {
	runner := &fakeRunner{stdout: "not json"}
	g := NewGHWithRunner(runner.run)

	_, err := g.IssueList(context.Background(), "MaxMillerLab/bills", 10)
	assert.ErrorIs(t, err, ErrUnexpectedOutput)
}

func TestGH_ProjectList(t *testing.T) {
	runner := &fakeRunner{stdout: `{"projects": [{"number": 3, "title": "Bills", "id": "PVT_1"}], "totalCount": 1}`}
	g := NewGHWithRunner(runner.run)

	projects, err := g.ProjectList(context.Background(), "MaxMillerLab", 1000)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Bills", projects[0].Title)
	assert.Equal(t,
		"project list --owner MaxMillerLab --format json --limit 1000",
		strings.Join(runner.calls[0].args, " "))
}

func TestGH_ProjectItemList(t *testing.T) {
	runner := &fakeRunner{stdout: `{"items": [{"id": "PVTI_1", "status": "Pause",
		"content": {"type": "Issue", "url": "https://github.com/MaxMillerLab/bills/issues/5"}}], "totalCount": 1}`}
	g := NewGHWithRunner(runner.run)

	items, err := g.ProjectItemList(context.Background(), 3, "MaxMillerLab", 1000)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pause", items[0].Field("status"))
	assert.Equal(t,
		"project item-list 3 --owner MaxMillerLab --format json --limit 1000",
		strings.Join(runner.calls[0].args, " "))
}

func TestGH_ProjectItemAdd(t *testing.T) {
	runner := &fakeRunner{}
	g := NewGHWithRunner(runner.run)

	err := g.ProjectItemAdd(context.Background(), 3, "MaxMillerLab", "https://github.com/MaxMillerLab/bills/issues/5")
	require.NoError(t, err)
	assert.Equal(t,
		"project item-add 3 --owner MaxMillerLab --url https://github.com/MaxMillerLab/bills/issues/5",
		strings.Join(runner.calls[0].args, " "))
}

type recordingObserver struct {
	commands []string
	results  []string
}

func (o *recordingObserver) ObserveCommandDuration(command, result string, _ float64) {
	o.commands = append(o.commands, command)
	o.results = append(o.results, result)
}

func TestInstrumentRunner(t *testing.T) {
	observer := &recordingObserver{}
	runner := &fakeRunner{err: errors.New("exit status 1")}
	g := NewGHWithRunner(InstrumentRunner(runner.run, observer))

	_ = g.ProjectItemAdd(context.Background(), 3, "MaxMillerLab", "u")
	runner.err = nil
	_, _ = g.Version(context.Background())

	assert.Equal(t, []string{"project item-add", "--version"}, observer.commands)
	assert.Equal(t, []string{"failure", "success"}, observer.results)
}
