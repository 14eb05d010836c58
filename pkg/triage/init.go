package triage

import (
	"fmt"

	"github.com/lerenn/issue-triage/pkg/triage/consts"
)

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	Force bool
}

// Init writes the default configuration to the config path.
func (t *realTriage) Init(opts InitOpts) error {
	params := map[string]interface{}{
		"force":      opts.Force,
		"configPath": t.deps.Config.GetConfigPath(),
	}

	_, err := executeWithHooks(t, consts.Init, params, func() (struct{}, error) {
		return struct{}{}, t.performInitialization(opts)
	})
	return err
}

func (t *realTriage) performInitialization(opts InitOpts) error {
	path := t.deps.Config.GetConfigPath()

	exists, err := t.deps.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check configuration file: %w", err)
	}
	if exists && !opts.Force {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, path)
	}

	if err := t.deps.Config.SaveConfig(t.deps.Config.DefaultConfig()); err != nil {
		return err
	}

	t.VerbosePrint("Configuration written to %s", path)
	return nil
}
