// Package metrics records run metrics and writes them in the Prometheus textfile format.
package metrics

// Provider is the interface every metrics backend implements.
type Provider interface {
	// ObserveGithubRequestDuration records the duration of a GitHub API request.
	ObserveGithubRequestDuration(method, handler, statusCode string, elapsed float64)
	// ObserveCommandDuration records the duration of a gh CLI invocation.
	ObserveCommandDuration(command, result string, elapsed float64)
	// SetScannedIssues records how many issues a report evaluated.
	SetScannedIssues(report string, count int)
	// SetFlaggedIssues records how many issues a report flagged.
	SetFlaggedIssues(report string, count int)
	// IncreaseProjectItemAdds counts one project item addition with its result.
	IncreaseProjectItemAdds(result string)
}

// Results used with IncreaseProjectItemAdds and ObserveCommandDuration.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type noopProvider struct{}

// NewNoopProvider returns a Provider that discards everything.
func NewNoopProvider() Provider {
	return noopProvider{}
}

func (noopProvider) ObserveGithubRequestDuration(_, _, _ string, _ float64) {}
func (noopProvider) ObserveCommandDuration(_, _ string, _ float64)          {}
func (noopProvider) SetScannedIssues(_ string, _ int)                       {}
func (noopProvider) SetFlaggedIssues(_ string, _ int)                       {}
func (noopProvider) IncreaseProjectItemAdds(_ string)                       {}
