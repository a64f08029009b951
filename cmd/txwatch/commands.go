package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the status of the tracked transaction",
		Action: func(c *cli.Context) error {
			snapshot, err := newClient(c).Status(c.Context)
			if err != nil {
				return err
			}
			return output(c, snapshot)
		},
	}
}

func trackCommand() *cli.Command {
	return &cli.Command{
		Name:      "track",
		Usage:     "Start tracking a transaction",
		ArgsUsage: "TXID",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("transaction id is required")
			}
			snapshot, err := newClient(c).Track(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return output(c, snapshot)
		},
	}
}

func stopCommand() *cli.Command {
	return &cli.Command{
		Name:  "stop",
		Usage: "Stop tracking",
		Action: func(c *cli.Context) error {
			return newClient(c).StopTracking(c.Context)
		},
	}
}

func refreshCommand() *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Poll the tracked transaction now",
		Action: func(c *cli.Context) error {
			return newClient(c).Refresh(c.Context)
		},
	}
}

func latestCommand() *cli.Command {
	return &cli.Command{
		Name:  "latest",
		Usage: "Show the newest unconfirmed transaction",
		Action: func(c *cli.Context) error {
			tx, err := newClient(c).LatestUnconfirmed(c.Context)
			if err != nil {
				return err
			}
			return output(c, tx)
		},
	}
}

func txCommand() *cli.Command {
	return &cli.Command{
		Name:      "tx",
		Usage:     "Show the derived summary of a transaction",
		ArgsUsage: "TXID",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("transaction id is required")
			}
			summary, err := newClient(c).Transaction(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return output(c, summary)
		},
	}
}

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Show or change notification settings",
		Action: func(c *cli.Context) error {
			prefs, err := newClient(c).Settings(c.Context)
			if err != nil {
				return err
			}
			return output(c, prefs)
		},
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Show notification settings",
				Action: func(c *cli.Context) error {
					prefs, err := newClient(c).Settings(c.Context)
					if err != nil {
						return err
					}
					return output(c, prefs)
				},
			},
			toggleCommand("toggle-visual", "visual"),
			toggleCommand("toggle-audio", "audio"),
		},
	}
}

func toggleCommand(name, channel string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: fmt.Sprintf("Toggle %s notifications", channel),
		Action: func(c *cli.Context) error {
			prefs, err := newClient(c).Toggle(c.Context, channel)
			if err != nil {
				return err
			}
			return output(c, prefs)
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show notification history, newest first",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "clear", Usage: "clear the history"},
		},
		Action: func(c *cli.Context) error {
			cl := newClient(c)
			if c.Bool("clear") {
				return cl.ClearNotifications(c.Context)
			}
			records, err := cl.Notifications(c.Context)
			if err != nil {
				return err
			}
			return output(c, records)
		},
	}
}

func snapshotsCommand() *cli.Command {
	return &cli.Command{
		Name:      "snapshots",
		Usage:     "Show stored poll results of a transaction",
		ArgsUsage: "TXID",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "limit", Usage: "maximum number of snapshots"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("transaction id is required")
			}
			entries, err := newClient(c).Snapshots(c.Context, c.Args().First(), c.Uint64("limit"))
			if err != nil {
				return err
			}
			return output(c, entries)
		},
	}
}

func commandCommand() *cli.Command {
	return &cli.Command{
		Name:      "command",
		Usage:     "Run a named server command",
		ArgsUsage: "NAME [JSON_PAYLOAD]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("command name is required")
			}
			var payload any
			if raw := c.Args().Get(1); raw != "" {
				if !json.Valid([]byte(raw)) {
					return errors.New("payload must be valid JSON")
				}
				payload = json.RawMessage(raw)
			}
			result, err := newClient(c).Command(c.Context, c.Args().First(), payload)
			if err != nil {
				return err
			}
			if len(result) == 0 {
				return nil
			}
			code, err := compileJQ(c.String("jq"))
			if err != nil {
				return err
			}
			return printRawJSON(c.App.Writer, result, code)
		},
	}
}
