package gh

import (
	"context"

	"github.com/lerenn/issue-triage/pkg/snapshot"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=gh.go -destination=mocks/gh.gen.go -package=mocks

// IssueFields are the fields requested from `gh issue list --json`.
const IssueFields = "number,title,url,updatedAt,createdAt,assignees,labels,milestone,projectItems,body,comments"

// GH interface provides GitHub CLI command execution capabilities.
type GH interface {
	// Version executes `gh --version` and returns its first line.
	Version(ctx context.Context) (string, error)

	// AuthStatus executes `gh auth status`.
	AuthStatus(ctx context.Context) error

	// IssueList lists the open issues of a repository (owner/name).
	IssueList(ctx context.Context, repo string, limit int) ([]snapshot.Issue, error)

	// ProjectList lists the projects of an owner.
	ProjectList(ctx context.Context, owner string, limit int) ([]snapshot.Project, error)

	// ProjectItemList lists the items of a project.
	ProjectItemList(ctx context.Context, number int, owner string, limit int) ([]snapshot.ProjectItem, error)

	// ProjectItemAdd adds an issue or pull request URL to a project.
	ProjectItemAdd(ctx context.Context, number int, owner, url string) error
}

type realGH struct {
	run Runner
}

// NewGH creates a new GH instance running the gh binary found in PATH.
func NewGH() GH {
	return &realGH{run: ExecRunner}
}

// NewGHWithRunner creates a GH instance executing commands through run.
func NewGHWithRunner(run Runner) GH {
	if run == nil {
		run = ExecRunner
	}
	return &realGH{run: run}
}
