package puppet

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/utils"
)

// AgentState provides an interface to the Puppet agent state files. It
// answers whether the agent has been administratively disabled and
// exposes the deserialized last run summary document.
//
// Every read degrades to a default value: a missing or unreadable state
// file is an ordinary "no data" condition, never an error.
type AgentState struct {
	// Paths are the resolved locations of the agent state files.
	Paths Paths

	// DisabledMessage carries the administrative message found in the
	// disabled lock, when present. It is only ever overwritten while
	// the lock exists; it keeps its last value after the lock is
	// removed.
	DisabledMessage *string

	fs afero.Fs
}

// NewAgentState builds an AgentState over the given filesystem. Unset
// paths fall back to the well-known agent cache locations; environment
// overrides are applied during resolution. No file access happens here.
func NewAgentState(fs afero.Fs, paths Paths) (*AgentState, error) {
	if err := paths.Resolve(); err != nil {
		return nil, fmt.Errorf("resolve state paths: %w", err)
	}

	return &AgentState{
		Paths: paths,
		fs:    fs,
	}, nil
}

// Disabled reports whether the agent has been administratively disabled
// by checking for the disabled lock. When the lock is present, any
// disabled_message it carries is stored into DisabledMessage. A lock
// that is not valid YAML still counts as disabled; the message is then
// left unknown.
func (state *AgentState) Disabled(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		return false
	}

	data, err := afero.ReadFile(state.fs, state.Paths.DisabledLock)
	if err != nil {
		slog.Debug("No agent disabled lock present, agent is enabled.",
			slog.String("path", state.Paths.DisabledLock))
		return false
	}

	slog.Debug("Located agent disabled lock, looking for an administrative message.",
		slog.String("path", state.Paths.DisabledLock))

	document := map[string]any{}
	if err := yaml.Unmarshal(data, &document); err != nil {
		// The lock's mere existence already implies disabled.
		slog.Warn("Puppet agent has been administratively disabled, lock is not readable YAML.",
			slog.String("path", state.Paths.DisabledLock),
			slog.String("error", err.Error()))
		return true
	}

	if message, ok := utils.SafeGet(document, "disabled_message").(string); ok {
		state.DisabledMessage = &message
	} else {
		state.DisabledMessage = nil
	}

	slog.Warn("Puppet agent has been administratively disabled.",
		slog.Any("message", state.DisabledMessage))

	return true
}

// RunSummary retrieves and deserializes the agent last run summary
// document. Parsing only materializes plain scalars, sequences and
// mappings. It returns an empty mapping when the file is missing,
// unreadable or not valid YAML; this method never returns an error.
func (state *AgentState) RunSummary(ctx context.Context) map[string]any {
	if err := ctx.Err(); err != nil {
		return map[string]any{}
	}

	data, err := afero.ReadFile(state.fs, state.Paths.SummaryFile)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No summary file present, agent has not completed a run yet.",
				slog.String("path", state.Paths.SummaryFile))
		} else {
			slog.Error("Unable to open summary file.",
				slog.String("path", state.Paths.SummaryFile),
				slog.String("error", err.Error()))
		}
		return map[string]any{}
	}

	var document map[string]any
	if err := yaml.Unmarshal(data, &document); err != nil {
		slog.Error("Unable to parse summary file.",
			slog.String("path", state.Paths.SummaryFile),
			slog.String("error", err.Error()))
		return map[string]any{}
	}

	if document == nil {
		document = map[string]any{}
	}

	slog.Debug("Parsed Puppet agent summary data.",
		slog.String("path", state.Paths.SummaryFile))

	return document
}
