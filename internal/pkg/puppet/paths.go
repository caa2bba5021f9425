package puppet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/mcuadros/go-defaults"
	"github.com/mitchellh/go-homedir"
)

// Paths holds the locations of the Puppet agent state files this library
// probes. Zero-valued fields fall back to the well-known locations under
// the agent cache directory.
type Paths struct {
	// SummaryFile is the YAML document the agent writes after each
	// catalog run, containing timing and failure statistics.
	SummaryFile string `default:"/opt/puppetlabs/puppet/cache/state/last_run_summary.yaml"`

	// RunLock is the marker file whose presence signals an in-progress
	// catalog run. Its modification time is the run's start time.
	RunLock string `default:"/opt/puppetlabs/puppet/cache/state/agent_catalog_run.lock"`

	// DisabledLock is the marker file whose presence signals the agent
	// has been administratively disabled. May carry an optional message.
	DisabledLock string `default:"/opt/puppetlabs/puppet/cache/state/agent_disabled.lock"`
}

// DefaultPaths returns the well-known agent state file locations.
func DefaultPaths() Paths {
	var paths Paths
	defaults.SetDefaults(&paths)
	return paths
}

// Resolve fills unset paths with their defaults, applies per-path
// environment overrides (PUPPETBEACON_<NAME>_PATH) and normalizes each
// path to an absolute, home-expanded form.
func (paths *Paths) Resolve() error {
	defaults.SetDefaults(paths)

	fields := []struct {
		name  string
		value *string
	}{
		{name: "summary-file", value: &paths.SummaryFile},
		{name: "run-lock", value: &paths.RunLock},
		{name: "disabled-lock", value: &paths.DisabledLock},
	}

	for _, field := range fields {
		resolved, err := resolveStatePath(field.name, *field.value)
		if err != nil {
			return fmt.Errorf("resolve %s path: %w", field.name, err)
		}

		*field.value = resolved
	}

	return nil
}

func resolveStatePath(name, fallback string) (string, error) {
	envVarName := "PUPPETBEACON_" + strcase.ToScreamingSnake(name) + "_PATH"

	value := fallback
	if envPath, ok := os.LookupEnv(envVarName); ok && envPath != "" {
		value = envPath
	}

	expanded, err := homedir.Expand(value)
	if err != nil {
		return "", fmt.Errorf("expand home directory: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	return abs, nil
}
