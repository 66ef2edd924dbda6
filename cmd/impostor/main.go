package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every subcommand.
type Globals struct {
	ConfigFile string `help:"Path to the HCL config file" name:"config-file" default:"impostor.hcl" type:"path"`
	Debug      bool   `help:"Enable debug logging" short:"d"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Play       PlayCmd          `cmd:"" help:"Deal a round and reveal roles player by player"`
	Categories CategoriesCmd    `cmd:"" help:"Inspect and edit the word categories"`
	Config     ConfigCmd        `cmd:"" help:"Show or clear the remembered game setup"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("impostor"),
		kong.Description("Social deduction party game: find who doesn't know the word"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
