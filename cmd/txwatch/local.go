package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/blockchaininfo"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/notify"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/tracker"
)

const localEventBuffer = 16

func localWatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Track a transaction directly against blockchain.info",
		ArgsUsage: "TXID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "blockchain.info base URL",
				EnvVars: []string{"TXWATCH_API_URL"},
				Value:   blockchaininfo.DefaultBaseURL,
			},
			&cli.DurationFlag{
				Name:    "interval",
				Usage:   "refresh interval",
				EnvVars: []string{"TXWATCH_POLL_INTERVAL"},
				Value:   30 * time.Second,
			},
			&cli.BoolFlag{Name: "visual", Usage: "print notifications", Value: true},
			&cli.BoolFlag{Name: "audio", Usage: "ring the terminal bell on notifications"},
			&cli.BoolFlag{Name: "block-signal", Usage: "refresh on new blocks from the blockchain.info websocket"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("transaction id is required")
			}
			code, err := compileJQ(c.String("jq"))
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := zap.NewNop()
			if c.Bool("debug") {
				if l, err := zap.NewDevelopment(); err == nil {
					logger = l
				}
			}
			return runLocalWatch(ctx, localConfig{
				txid:        c.Args().First(),
				apiURL:      c.String("api-url"),
				interval:    c.Duration("interval"),
				visual:      c.Bool("visual"),
				audio:       c.Bool("audio"),
				blockSignal: c.Bool("block-signal"),
			}, newRenderer(c.App.Writer, code), logger)
		},
	}
}

type localConfig struct {
	txid        string
	apiURL      string
	interval    time.Duration
	visual      bool
	audio       bool
	blockSignal bool
}

func runLocalWatch(ctx context.Context, cfg localConfig, r *renderer, logger *zap.Logger) error {
	source := blockchaininfo.NewClient(cfg.apiURL,
		blockchaininfo.WithMetrics(metrics.NewAPIClient("blockchaininfo")),
		blockchaininfo.WithLogger(logger.Named("blockchaininfo")),
	)
	return watchLocal(ctx, cfg, source, r, logger)
}

func watchLocal(ctx context.Context, cfg localConfig, source tracker.ChainSource, r *renderer, logger *zap.Logger) error {
	bus := events.NewBus()
	store := kvstore.NewMemoryStore()
	notifier := notify.NewNotifier(
		notify.LoadPreferences(ctx, store, bus, logger),
		notify.LoadHistory(ctx, store, logger),
		bus,
		logger,
	)

	statuses, unsubStatus := bus.Status.Subscribe(localEventBuffer)
	defer unsubStatus()
	notifications, unsubNotifications := bus.Notification.Subscribe(localEventBuffer)
	defer unsubNotifications()
	countdown, unsubCountdown := bus.Countdown.Subscribe(localEventBuffer)
	defer unsubCountdown()

	opts := []tracker.Option{tracker.WithInterval(cfg.interval)}
	if cfg.blockSignal {
		opts = append(opts, tracker.WithBlockSignal(
			blockchaininfo.StartBlockSignal(ctx, blockchaininfo.DefaultBlockSignalConfig(), logger.Named("blockSignal")),
		))
	}
	manager, err := tracker.NewManager(source, notifier, metrics.NewTracker(), bus, logger, opts...)
	if err != nil {
		return err
	}
	defer manager.Close()

	if _, err := notifier.SetVisual(ctx, cfg.visual); err != nil {
		return err
	}
	if _, err := notifier.SetAudio(ctx, cfg.audio); err != nil {
		return err
	}
	if err := manager.Track(cfg.txid); err != nil {
		return err
	}

	for {
		var (
			name string
			v    any
		)
		select {
		case <-ctx.Done():
			return nil
		case v = <-statuses:
			name = "status"
		case v = <-notifications:
			name = "notification"
		case d := <-countdown:
			name, v = "countdown", countdownEvent{RemainingSeconds: int64(d / time.Second)}
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := r.handle(name, data); err != nil {
			return err
		}
	}
}
