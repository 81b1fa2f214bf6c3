package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `name:"no-color" help:"Disable colored output"`

	Tables   TablesCmd   `cmd:"" help:"List the rooms defined in a config file"`
	Deal     DealCmd     `cmd:"" help:"Deal one hand at a configured table"`
	Replay   ReplayCmd   `cmd:"" help:"Replay a scripted hand and print the result"`
	Verify   VerifyCmd   `cmd:"" help:"Replay a script many times concurrently and check every run matches"`
	Simulate SimulateCmd `cmd:"" help:"Play a session of automated hands and report per-seat results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("multipoker"),
		kong.Description("Multi-variant poker engine: hold'em, PLO bomb pots, Indian poker and 3-2-1"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":  version,
			"policies": policyHelp(),
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}

	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err := ctx.Run(newLogger(os.Stderr, cli.Debug))
	ctx.FatalIfErrorf(err)
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: debug,
		Prefix:          "multipoker",
	})
}
