package main

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	puppetbeaconctl "github.com/orbiqd/orbiqd-puppetbeacon/internal/app/puppetbeacon-ctl"
	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/cli"
)

func main() {
	var command puppetbeaconctl.Command

	kctx := kong.Parse(&command,
		kong.Name("puppetbeacon-ctl"),
		kong.Description("Probe the status of the local Puppet agent."),
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
