package puppetbeaconctl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/puppet"
)

// StatusCmd probes the agent state files and prints a status report.
type StatusCmd struct{}

// Run executes the status command.
func (command *StatusCmd) Run(ctx context.Context, fs afero.Fs, paths puppet.Paths) error {
	agent, err := puppet.NewAgent(ctx, fs, paths)
	if err != nil {
		return fmt.Errorf("probe puppet agent: %w", err)
	}

	report := puppet.NewReport(ctx, agent)

	slog.Debug("Assembled agent status report.", slog.String("reportId", report.ReportID))

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode status report: %w", err)
	}

	return nil
}
