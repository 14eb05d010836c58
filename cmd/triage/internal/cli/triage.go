package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/lerenn/issue-triage/pkg/dependencies"
	"github.com/lerenn/issue-triage/pkg/forge"
	"github.com/lerenn/issue-triage/pkg/gh"
	defaulthooks "github.com/lerenn/issue-triage/pkg/hooks/default"
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/metrics"
	"github.com/lerenn/issue-triage/pkg/triage"
)

// TokenEnv is the environment variable holding the GitHub token of the api source.
const TokenEnv = "GITHUB_TOKEN"

// Session is a triage instance and the metrics it records.
type Session struct {
	Triage  triage.Triage
	Metrics *metrics.PrometheusProvider
}

// NewSession wires a Triage instance from the command line flags and the environment.
func NewSession() (*Session, error) {
	if err := LoadEnv(".env"); err != nil {
		return nil, err
	}

	provider := metrics.NewPrometheusProvider()
	log := NewLogger()

	// Operation traces are only shown in verbose mode.
	hookLog := logger.NewNoopLogger()
	if Verbose {
		hookLog = log
	}
	hookManager, err := defaulthooks.NewDefaultHooksManager(hookLog, provider)
	if err != nil {
		return nil, err
	}

	ghCLI := gh.NewGHWithRunner(gh.InstrumentRunner(gh.ExecRunner, provider))
	forges := forge.NewManager(log,
		forge.NewCLI(ghCLI),
		forge.NewGitHub(os.Getenv(TokenEnv), metrics.NewTransport(nil, provider)),
	)

	deps := dependencies.New()
	deps = deps.
		WithGH(ghCLI).
		WithConfig(NewConfigManager()).
		WithForges(forges).
		WithLogger(log).
		WithHookManager(hookManager).
		WithMetrics(provider)

	t, err := triage.NewTriage(triage.NewTriageParams{
		Dependencies: deps,
		DataDir:      DataDir,
		OutputDir:    OutputDir,
	})
	if err != nil {
		return nil, err
	}

	return &Session{Triage: t, Metrics: provider}, nil
}

// Close writes the metrics textfile when one was requested.
func (s *Session) Close() error {
	if MetricsFile == "" {
		return nil
	}
	return s.Metrics.WriteTextfile(MetricsFile)
}

// NewLogger returns the progress logger matching the verbosity flags.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewNoopLogger()
	case Verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewWriterLogger(os.Stderr)
	}
}

// LoadEnv loads variables from an env file without overriding the environment.
// A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrLoadEnvFile, err)
	}
	return nil
}

// PrintWarnings writes every warning on its own line.
func PrintWarnings(w io.Writer, warnings []logger.Entry) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning.String())
	}
}
