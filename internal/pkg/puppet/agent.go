package puppet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/utils"
)

// ErrRunDurationNotNumeric indicates the summary document carries a
// time.total value that cannot be coerced to a whole-second count.
var ErrRunDurationNotNumeric = errors.New("summary run duration is not numeric")

// Agent exposes detailed Puppet agent data and statistics on top of the
// raw state reads: when the agent last completed a catalog run and how
// long it took, how many resources and events failed, the agent version,
// and whether a catalog run is currently in progress.
//
// Derived fields stay nil until the corresponding key path has been read
// from a summary document. A refresh against an empty summary keeps the
// previous values.
type Agent struct {
	*AgentState

	// LastRun is the number of seconds since the last catalog run.
	LastRun *int

	// LastRunDuration is the duration of the last catalog run in seconds.
	LastRunDuration *int

	// EventsFailed is the number of failed events during the last run.
	EventsFailed *int

	// ResourcesFailed is the number of resources that failed during the
	// last run.
	ResourcesFailed *int

	// ResourcesFailedRestart is the number of resources that failed to
	// restart during the last run.
	ResourcesFailedRestart *int

	// PuppetVersion is the Puppet agent version string.
	PuppetVersion *string
}

// NewAgent builds an Agent and eagerly performs one summary refresh, so
// a freshly constructed instance already carries the last run facts.
// The returned error is the refresh coercion failure, the one failure
// mode that does not degrade to "no data".
func NewAgent(ctx context.Context, fs afero.Fs, paths Paths) (*Agent, error) {
	state, err := NewAgentState(fs, paths)
	if err != nil {
		return nil, err
	}

	agent := &Agent{AgentState: state}

	if _, err := agent.RefreshLastRun(ctx); err != nil {
		return nil, fmt.Errorf("refresh last run: %w", err)
	}

	return agent, nil
}

// RunDuration reports how long the agent has been executing the current
// catalog run by reading the age of the run lock, in whole seconds. It
// returns nil when no run is in progress.
func (agent *Agent) RunDuration(ctx context.Context) *int {
	if err := ctx.Err(); err != nil {
		return nil
	}

	info, err := agent.fs.Stat(agent.Paths.RunLock)
	if err != nil {
		slog.Debug("Puppet agent is not executing a catalog run.",
			slog.String("path", agent.Paths.RunLock))
		return nil
	}

	duration := utils.ElapsedSeconds(info.ModTime().Unix())
	if duration != nil {
		slog.Debug("Located agent run lock, catalog run in progress.",
			slog.String("path", agent.Paths.RunLock),
			slog.Int("seconds", *duration))
	}

	return duration
}

// RefreshLastRun reads the summary document and updates the derived
// fields from it. It returns false when no summary data could be
// retrieved, leaving every field at its previous value. The only error
// it returns is ErrRunDurationNotNumeric, for a summary whose time.total
// holds a non-numeric value.
func (agent *Agent) RefreshLastRun(ctx context.Context) (bool, error) {
	summary := agent.RunSummary(ctx)
	if len(summary) == 0 {
		return false, nil
	}

	lastRunDuration, err := coerceSeconds(utils.SafeGet(summary, "time", "total"))
	if err != nil {
		return false, err
	}

	agent.LastRun = utils.ElapsedSeconds(utils.SafeGet(summary, "time", "last_run"))
	agent.LastRunDuration = lastRunDuration
	agent.EventsFailed = toCount(utils.SafeGet(summary, "events", "failure"))
	agent.ResourcesFailed = toCount(utils.SafeGet(summary, "resources", "failed"))
	agent.ResourcesFailedRestart = toCount(utils.SafeGet(summary, "resources", "failed_to_restart"))

	if version, ok := utils.SafeGet(summary, "version", "puppet").(string); ok {
		agent.PuppetVersion = &version
	} else {
		agent.PuppetVersion = nil
	}

	return true, nil
}

// coerceSeconds converts a summary value to whole seconds. A nil value
// stays nil; a present non-numeric value is the documented hard failure.
func coerceSeconds(value any) (*int, error) {
	if value == nil {
		return nil, nil
	}

	seconds, ok := toInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrRunDurationNotNumeric, value)
	}

	return &seconds, nil
}

// toCount converts a summary counter to an int, treating a missing or
// wrong-typed value as absent.
func toCount(value any) *int {
	count, ok := toInt(value)
	if !ok {
		return nil
	}

	return &count
}

func toInt(value any) (int, bool) {
	switch typed := value.(type) {
	case float64:
		return int(typed), true
	case float32:
		return int(typed), true
	case int:
		return typed, true
	case int32:
		return int(typed), true
	case int64:
		return int(typed), true
	default:
		return 0, false
	}
}
