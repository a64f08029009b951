package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/blockchaininfo"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/natsbus"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/notify"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/tracker"
)

type config struct {
	GRPCAddr string `long:"grpc-addr" env:"TXWATCH_GRPC_ADDR" description:"gRPC health listen address" default:":8000"`
	HTTPAddr string `long:"http-addr" env:"TXWATCH_HTTP_ADDR" description:"HTTP API listen address" default:":8001"`

	Source              string        `long:"source" env:"TXWATCH_SOURCE" description:"chain data source" choice:"blockchaininfo" choice:"node" default:"blockchaininfo"`
	APIURL              string        `long:"api-url" env:"TXWATCH_API_URL" description:"blockchain.info base URL" default:"https://blockchain.info"`
	APITimeout          time.Duration `long:"api-timeout" env:"TXWATCH_API_TIMEOUT" description:"HTTP timeout for data API requests" default:"30s"`
	LatestBlockInterval time.Duration `long:"latest-block-interval" env:"TXWATCH_LATEST_BLOCK_INTERVAL" description:"minimum spacing of latest block requests" default:"2s"`
	RetryAfter          time.Duration `long:"retry-after" env:"TXWATCH_RETRY_AFTER" description:"wait before retrying a rate limited request" default:"5s"`
	BlockSignal         bool          `long:"block-signal" env:"TXWATCH_BLOCK_SIGNAL" description:"refresh on new blocks from the blockchain.info websocket"`
	WebsocketURL        string        `long:"websocket-url" env:"TXWATCH_WEBSOCKET_URL" description:"blockchain.info websocket URL" default:"wss://ws.blockchain.info/inv"`

	Network        model.Network `long:"network" env:"TXWATCH_NETWORK" description:"bitcoin network of the node" default:"mainnet"`
	RPCURL         string        `long:"rpc-url" env:"TXWATCH_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"TXWATCH_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"TXWATCH_RPC_PASSWORD" description:"Bitcoin RPC password"`
	PrevoutWorkers int           `long:"prevout-workers" env:"TXWATCH_PREVOUT_WORKERS" description:"parallel previous output lookups" default:"8"`
	ZMQAddr        string        `long:"zmq-addr" env:"TXWATCH_ZMQ_ADDR" description:"node zmq hashblock endpoint, requires the zmq build tag"`

	PollInterval time.Duration `long:"poll-interval" env:"TXWATCH_POLL_INTERVAL" description:"refresh interval" default:"30s"`
	Track        string        `long:"track" env:"TXWATCH_TRACK" description:"transaction id to track on startup"`

	Store       string `long:"store" env:"TXWATCH_STORE" description:"notification store backend" choice:"file" choice:"postgres" default:"file"`
	StoreDir    string `long:"store-dir" env:"TXWATCH_STORE_DIR" description:"directory of the file store" default:".txwatch"`
	PostgresDSN string `long:"postgres-dsn" env:"TXWATCH_POSTGRES_DSN" description:"PostgreSQL DSN for the postgres store"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"TXWATCH_CLICKHOUSE_DSN" description:"ClickHouse DSN for snapshot history"`
	NATSURL       string `long:"nats-url" env:"TXWATCH_NATS_URL" description:"NATS URL for event publishing"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("txwatch server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	source, closeSource, err := newSource(cfg, logger)
	if err != nil {
		return fmt.Errorf("init chain source: %w", err)
	}
	defer closeSource()

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer closeStore()

	bus := events.NewBus()
	prefs := notify.LoadPreferences(ctx, store, bus, logger)
	history := notify.LoadHistory(ctx, store, logger)
	notifier := notify.NewNotifier(prefs, history, bus, logger)

	opts := []tracker.Option{tracker.WithInterval(cfg.PollInterval)}

	blocks, err := newBlockSignal(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init block signal: %w", err)
	}
	if blocks != nil {
		opts = append(opts, tracker.WithBlockSignal(blocks))
	}

	var snapshots service.SnapshotHistory
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()

		writer := tracker.NewSnapshotWriter(repo, logger)
		writer.Start(context.WithoutCancel(ctx))
		defer writer.Stop()

		opts = append(opts, tracker.WithRecorder(writer))
		snapshots = repo
	}

	if cfg.NATSURL != "" {
		publisher, err := natsbus.Connect(ctx, cfg.NATSURL, metrics.NewPublisher(), logger)
		if err != nil {
			return fmt.Errorf("init nats: %w", err)
		}
		defer func() {
			_ = publisher.Close()
		}()
		go func() {
			if err := publisher.Run(ctx, bus); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("nats publisher stopped", zap.Error(err))
			}
		}()
	}

	manager, err := tracker.NewManager(source, notifier, metrics.NewTracker(), bus, logger, opts...)
	if err != nil {
		return err
	}
	defer manager.Close()

	svc, err := service.New(manager, notifier, source, snapshots, bus, logger)
	if err != nil {
		return err
	}

	if cfg.Track != "" {
		if _, err := svc.TrackTransaction(ctx, cfg.Track); err != nil {
			return fmt.Errorf("track %s: %w", cfg.Track, err)
		}
	}

	return serve(ctx, cfg, svc, bus, logger)
}

func newBlockSignal(ctx context.Context, cfg config, logger *zap.Logger) (<-chan struct{}, error) {
	switch {
	case cfg.Source == sourceNode && cfg.ZMQAddr != "":
		return startZMQBlockSignal(ctx, cfg.ZMQAddr, logger.Named("zmq"))
	case cfg.Source == sourceBlockchainInfo && cfg.BlockSignal:
		sc := blockchaininfo.DefaultBlockSignalConfig()
		sc.URL = cfg.WebsocketURL
		return blockchaininfo.StartBlockSignal(ctx, sc, logger.Named("blockSignal")), nil
	default:
		return nil, nil
	}
}
