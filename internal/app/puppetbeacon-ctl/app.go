package puppetbeaconctl

import "github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/cli"

// Command is the puppetbeacon-ctl command tree.
type Command struct {
	Log   cli.LogConfig   `embed:"" prefix:"log-"`
	State cli.StateConfig `embed:"" prefix:"state-"`

	Status    StatusCmd    `cmd:"" help:"Report the status of the local Puppet agent"`
	Discovery DiscoveryCmd `cmd:"" help:"Discover the local puppet executable"`
}
