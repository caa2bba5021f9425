package main

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	puppetbeacon_mcp "github.com/orbiqd/orbiqd-puppetbeacon/internal/app/puppetbeacon-mcp"
	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/cli"
)

func main() {
	var command puppetbeacon_mcp.Command

	kctx := kong.Parse(&command,
		kong.Name("puppetbeacon-mcp"),
		kong.Description("Expose the local Puppet agent status as an MCP tool."),
		kong.UsageOnError(),
	)

	logger, err := cli.CreateLoggerFromConfig(command.Log)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	kctx.BindTo(context.Background(), (*context.Context)(nil))
	kctx.BindTo(afero.NewOsFs(), (*afero.Fs)(nil))
	kctx.Bind(command.State.Paths())

	kctx.FatalIfErrorf(kctx.Run())
}
