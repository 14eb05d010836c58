package triage

import (
	"github.com/lerenn/issue-triage/pkg/logger"
	"github.com/lerenn/issue-triage/pkg/mapping"
	"github.com/lerenn/issue-triage/pkg/triage/consts"
)

// SuggestMappingsReport is the outcome of SuggestMappings.
type SuggestMappingsReport struct {
	Suggestions []mapping.Suggestion
	// Current is the configured repository to project mapping.
	Current map[string]string
	// YAML is a project_mapping block built from the suggestions.
	YAML []byte

	Warnings []logger.Entry
}

// SuggestMappings analyses which projects the issues of each repository belong to.
func (t *realTriage) SuggestMappings() (*SuggestMappingsReport, error) {
	return executeWithHooks(t, consts.SuggestMappings, map[string]interface{}{}, func() (*SuggestMappingsReport, error) {
		diag := logger.NewCollector(t.deps.Logger)
		cfg, snap, err := t.loadSnapshot(diag)
		if err != nil {
			return nil, err
		}

		suggestions := mapping.Analyze(snap)
		data, err := mapping.RenderYAML(suggestions)
		if err != nil {
			return nil, err
		}

		return &SuggestMappingsReport{
			Suggestions: suggestions,
			Current:     cfg.ProjectMapping,
			YAML:        data,
			Warnings:    diag.Warnings(),
		}, nil
	})
}
