package cli

import "github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/puppet"

// StateConfig carries the agent state-path flags shared by every
// puppetbeacon binary. Empty values fall back to the well-known
// locations under the agent cache directory.
type StateConfig struct {
	SummaryFile  string `help:"Path to the agent last run summary file." placeholder:"PATH"`
	RunLock      string `help:"Path to the agent catalog run lock." placeholder:"PATH"`
	DisabledLock string `help:"Path to the agent disabled lock." placeholder:"PATH"`
}

// Paths converts the flag values into the library's path set. Unset
// flags stay empty so default and environment resolution still apply.
func (config StateConfig) Paths() puppet.Paths {
	return puppet.Paths{
		SummaryFile:  config.SummaryFile,
		RunLock:      config.RunLock,
		DisabledLock: config.DisabledLock,
	}
}
