package puppetbeaconctl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/puppet"
)

// DiscoveryCmd reports whether a puppet executable is installed on this
// host and which version it carries.
type DiscoveryCmd struct{}

// Run executes the discovery command.
func (command *DiscoveryCmd) Run(ctx context.Context) error {
	found, err := puppet.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover puppet executable: %w", err)
	}

	if !found {
		slog.Warn("No puppet executable found on this host.")
		return nil
	}

	info, err := puppet.DiscoverBinary(ctx)
	if err != nil {
		return fmt.Errorf("read puppet executable info: %w", err)
	}

	slog.Info("Puppet executable discovered.",
		slog.String("path", info.Path),
		slog.String("version", info.Version),
	)

	return nil
}
