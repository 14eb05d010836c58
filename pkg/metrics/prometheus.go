package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "triage"
	githubSubsystem  = "github"
	reportSubsystem  = "report"
)

// PrometheusProvider keeps the run metrics in a dedicated registry.
type PrometheusProvider struct {
	Registry *prometheus.Registry

	githubRequests  *prometheus.HistogramVec
	commandDuration *prometheus.HistogramVec
	scannedIssues   *prometheus.GaugeVec
	flaggedIssues   *prometheus.GaugeVec
	projectItemAdds *prometheus.CounterVec
}

// NewPrometheusProvider creates a provider with every metric registered.
func NewPrometheusProvider() *PrometheusProvider {
	p := &PrometheusProvider{Registry: prometheus.NewRegistry()}

	p.githubRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: githubSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of GitHub API requests.",
		},
		[]string{"method", "handler", "status_code"},
	)
	p.commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: githubSubsystem,
			Name:      "cli_duration_seconds",
			Help:      "Duration of gh CLI invocations.",
		},
		[]string{"command", "result"},
	)
	p.scannedIssues = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: reportSubsystem,
			Name:      "scanned_issues",
			Help:      "Issues evaluated by a report.",
		},
		[]string{"report"},
	)
	p.flaggedIssues = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: reportSubsystem,
			Name:      "flagged_issues",
			Help:      "Issues flagged by a report.",
		},
		[]string{"report"},
	)
	p.projectItemAdds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "project_item_adds_total",
			Help:      "Project item additions by result.",
		},
		[]string{"result"},
	)

	p.Registry.MustRegister(p.githubRequests, p.commandDuration, p.scannedIssues, p.flaggedIssues, p.projectItemAdds)

	return p
}

func (p *PrometheusProvider) ObserveGithubRequestDuration(method, handler, statusCode string, elapsed float64) {
	p.githubRequests.WithLabelValues(method, handler, statusCode).Observe(elapsed)
}

func (p *PrometheusProvider) ObserveCommandDuration(command, result string, elapsed float64) {
	p.commandDuration.WithLabelValues(command, result).Observe(elapsed)
}

func (p *PrometheusProvider) SetScannedIssues(report string, count int) {
	p.scannedIssues.WithLabelValues(report).Set(float64(count))
}

func (p *PrometheusProvider) SetFlaggedIssues(report string, count int) {
	p.flaggedIssues.WithLabelValues(report).Set(float64(count))
}

func (p *PrometheusProvider) IncreaseProjectItemAdds(result string) {
	p.projectItemAdds.WithLabelValues(result).Inc()
}

// WriteTextfile writes every gathered metric to path in the textfile collector format.
func (p *PrometheusProvider) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.Registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}
