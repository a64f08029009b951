package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	// Version information, set via ldflags.
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "txwatch",
		Usage:   "Bitcoin transaction confirmation tracker",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "txwatch server URL",
				EnvVars: []string{"TXWATCH_SERVER_URL"},
				Value:   "http://localhost:8001",
			},
			&cli.StringFlag{
				Name:  "jq",
				Usage: "jq filter applied to JSON output",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log requests to stderr",
				EnvVars: []string{"TXWATCH_DEBUG"},
			},
		},
		Commands: []*cli.Command{
			statusCommand(),
			trackCommand(),
			stopCommand(),
			refreshCommand(),
			latestCommand(),
			txCommand(),
			settingsCommand(),
			historyCommand(),
			snapshotsCommand(),
			commandCommand(),
			watchCommand(),
			{
				Name:  "local",
				Usage: "Run without a server",
				Subcommands: []*cli.Command{
					localWatchCommand(),
				},
			},
		},
	}
}
