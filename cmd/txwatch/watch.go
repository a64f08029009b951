package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/pkg/client"
)

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Follow status changes and notifications from the server",
		Action: func(c *cli.Context) error {
			code, err := compileJQ(c.String("jq"))
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := newRenderer(c.App.Writer, code)
			err = newClient(c).Stream(ctx, func(ev client.Event) error {
				return r.handle(ev.Name, ev.Data)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
