package puppet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/utils"
)

// Report is a point-in-time snapshot of the agent status, shaped for
// machine-readable output surfaces.
type Report struct {
	// ReportID uniquely identifies this snapshot.
	ReportID string `json:"reportId"`

	// GeneratedAt is the timestamp the snapshot was taken.
	GeneratedAt time.Time `json:"generatedAt"`

	// Disabled reports whether the agent is administratively disabled.
	Disabled bool `json:"disabled"`

	// DisabledMessage carries the administrative reason, when available.
	DisabledMessage *string `json:"disabledMessage,omitempty"`

	// RunInProgress reports whether a catalog run is currently executing.
	RunInProgress bool `json:"runInProgress"`

	// RunningFor is the age of the in-progress catalog run.
	RunningFor *utils.Duration `json:"runningFor,omitempty"`

	// SinceLastRun is the elapsed time since the last completed run.
	SinceLastRun *utils.Duration `json:"sinceLastRun,omitempty"`

	// LastRunDuration is how long the last catalog run took.
	LastRunDuration *utils.Duration `json:"lastRunDuration,omitempty"`

	EventsFailed           *int    `json:"eventsFailed,omitempty"`
	ResourcesFailed        *int    `json:"resourcesFailed,omitempty"`
	ResourcesFailedRestart *int    `json:"resourcesFailedRestart,omitempty"`
	PuppetVersion          *string `json:"puppetVersion,omitempty"`
}

// NewReport assembles a status report from the agent's current state.
func NewReport(ctx context.Context, agent *Agent) Report {
	report := Report{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}

	report.Disabled = agent.Disabled(ctx)
	if report.Disabled {
		report.DisabledMessage = agent.DisabledMessage
	}

	if seconds := agent.RunDuration(ctx); seconds != nil {
		report.RunInProgress = true
		report.RunningFor = utils.ToPointer(utils.DurationOfSeconds(*seconds))
	}

	report.SinceLastRun = durationOfSecondsPtr(agent.LastRun)
	report.LastRunDuration = durationOfSecondsPtr(agent.LastRunDuration)
	report.EventsFailed = agent.EventsFailed
	report.ResourcesFailed = agent.ResourcesFailed
	report.ResourcesFailedRestart = agent.ResourcesFailedRestart
	report.PuppetVersion = agent.PuppetVersion

	return report
}

func durationOfSecondsPtr(seconds *int) *utils.Duration {
	if seconds == nil {
		return nil
	}

	return utils.ToPointer(utils.DurationOfSeconds(*seconds))
}
