package main

import (
	"log/slog"
	"os"

	"framelab/command"
	"framelab/convert"
	"framelab/export"
	"framelab/palette"
	"framelab/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel slog.Level      `help:"Minimum log level (debug, info, warn, error)" default:"info" env:"FRAMELAB_LOG_LEVEL"`
	LogJSON  bool            `help:"Log as JSON" name:"log-json" env:"FRAMELAB_LOG_JSON"`
	Workers  int             `help:"Workers for independent exports and conversions. Zero uses every CPU." default:"1"`
	Config   kong.ConfigFlag `help:"Load flag defaults from a JSON file"`

	Draw    command.CLICmd `cmd:"" help:"Apply drawing steps to a new framebuffer and save it as TGA"`
	Swaps   export.CLICmd  `cmd:"" help:"Export the 64 channel remaps of an image"`
	Convert convert.CLICmd `cmd:"" help:"Convert the pictures of a folder to TGA"`
	Palette palette.CLICmd `cmd:"" help:"Write the toolbar swatches as a RIFF PAL file"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("framelab"),
		kong.Description("Framebuffer drawing lab"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "framelab.json", "~/.config/framelab.json"),
	)

	opts := &slog.HandlerOptions{Level: cli.LogLevel}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cli.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	pool := parallel.Start(cli.Workers)
	err := kctx.Run(pool)
	pool.Wait()
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
