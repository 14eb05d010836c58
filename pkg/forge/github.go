package forge

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issue-triage/pkg/snapshot"
	"golang.org/x/oauth2"
)

const (
	// GitHubName is the name of the GitHub REST API issue source.
	GitHubName = "api"
	// perPage is the page size requested from the issues endpoint.
	perPage = 100
)

// IssuesService is the subset of the go-github issues service in use.
type IssuesService interface {
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
}

// GitHub lists issues through the GitHub REST API.
type GitHub struct {
	issues IssuesService
}

// NewGitHub creates a GitHub REST client. A non-empty token authenticates every
// request; transport, when set, carries the requests (e.g. for metrics).
func NewGitHub(token string, transport http.RoundTripper) *GitHub {
	base := &http.Client{Transport: transport}

	httpClient := base
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	return NewGitHubWithIssues(github.NewClient(httpClient).Issues)
}

// NewGitHubWithIssues creates a GitHub source on top of an issues service.
func NewGitHubWithIssues(issues IssuesService) *GitHub {
	return &GitHub{issues: issues}
}

// Name returns the name of the issue source.
func (g *GitHub) Name() string {
	return GitHubName
}

// ListOpenIssues pages through the open issues of repo, skipping pull requests.
func (g *GitHub) ListOpenIssues(ctx context.Context, repo string, limit int) ([]snapshot.Issue, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepository, repo)
	}

	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var issues []snapshot.Issue
	for {
		page, resp, err := g.issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			return nil, g.handleGitHubError(err, resp, repo)
		}

		for _, issue := range page {
			if issue.IsPullRequest() {
				continue
			}
			issues = append(issues, toSnapshotIssue(issue))
			if limit > 0 && len(issues) >= limit {
				return issues, nil
			}
		}

		if resp == nil || resp.NextPage == 0 {
			return issues, nil
		}
		opts.Page = resp.NextPage
	}
}

func toSnapshotIssue(issue *github.Issue) snapshot.Issue {
	out := snapshot.Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		UpdatedAt: formatTimestamp(issue.GetUpdatedAt()),
		CreatedAt: formatTimestamp(issue.GetCreatedAt()),
		Body:      issue.GetBody(),
		Assignees: []snapshot.Assignee{},
	}

	for _, user := range issue.Assignees {
		out.Assignees = append(out.Assignees, snapshot.Assignee{Login: user.GetLogin()})
	}
	for _, label := range issue.Labels {
		out.Labels = append(out.Labels, snapshot.Label{Name: label.GetName()})
	}
	if issue.Milestone != nil {
		out.Milestone = &snapshot.Milestone{Title: issue.Milestone.GetTitle()}
	}

	return out
}

func formatTimestamp(ts github.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, repo string) error {
	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrRepositoryNotFound, repo)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to list issues of %s: %w", repo, err)
}
