package puppetbeacon_mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/puppet"
)

func createStatusTool(fs afero.Fs, paths puppet.Paths) mcpserver.ServerTool {
	tool := mcp.NewTool("puppet_agent_status",
		mcp.WithDescription("Reads the local Puppet agent state files and reports whether the agent is disabled, whether a catalog run is in progress, and the statistics of the last completed run."),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		agent, err := puppet.NewAgent(ctx, fs, paths)
		if err != nil {
			return mcp.NewToolResultError(fmt.Errorf("probe puppet agent: %w", err).Error()), nil
		}

		report := puppet.NewReport(ctx, agent)

		return mcp.NewToolResultStructured(report, summarizeReport(report)), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

func summarizeReport(report puppet.Report) string {
	var parts []string

	if report.Disabled {
		message := "no message"
		if report.DisabledMessage != nil {
			message = *report.DisabledMessage
		}
		parts = append(parts, fmt.Sprintf("Agent is administratively disabled (%s).", message))
	} else {
		parts = append(parts, "Agent is enabled.")
	}

	if report.RunInProgress && report.RunningFor != nil {
		parts = append(parts, fmt.Sprintf("A catalog run has been in progress for %d seconds.", report.RunningFor.Seconds()))
	}

	if report.SinceLastRun != nil {
		parts = append(parts, fmt.Sprintf("Last run completed %d seconds ago.", report.SinceLastRun.Seconds()))
	}

	if report.ResourcesFailed != nil {
		parts = append(parts, fmt.Sprintf("%d resources failed.", *report.ResourcesFailed))
	}

	return strings.Join(parts, " ")
}
