package puppetbeacon_mcp

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/cli"
	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/puppet"
)

// Command is the puppetbeacon-mcp stdio server.
type Command struct {
	Log   cli.LogConfig   `embed:"" prefix:"log-"`
	State cli.StateConfig `embed:"" prefix:"state-"`
}

// Run starts the MCP server over stdio and blocks until it stops.
func (command *Command) Run(ctx context.Context, fs afero.Fs, paths puppet.Paths) error {
	server := mcpserver.NewMCPServer(
		"puppetbeacon-mcp",
		"1.0.0",
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	server.AddTools(createStatusTool(fs, paths))

	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}

	return nil
}
