package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Table   TableCmd         `cmd:"" help:"Generate and print the card table for a seed"`
	Line    LineCmd          `cmd:"" help:"Read one line from the table and rank it"`
	Rank    RankCmd          `cmd:"" help:"Rank a four-card hand, optionally against another"`
	Deal    DealCmd          `cmd:"" help:"Deal pairs of distinct hands from the table"`
	Sweep   SweepCmd         `cmd:"" help:"Generate tables for a range of seeds and summarise them"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("badugi"),
		kong.Description("Seeded Badugi card tables and hand rankings"),
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
