package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/blockchaininfo"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/kvstore/postgres"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/service"
)

const (
	sourceBlockchainInfo = "blockchaininfo"
	sourceNode           = "node"

	storeFile     = "file"
	storePostgres = "postgres"
)

func newSource(cfg config, logger *zap.Logger) (service.ChainSource, func(), error) {
	switch cfg.Source {
	case sourceBlockchainInfo:
		client := blockchaininfo.NewClient(cfg.APIURL,
			blockchaininfo.WithTimeout(cfg.APITimeout),
			blockchaininfo.WithLatestBlockInterval(cfg.LatestBlockInterval),
			blockchaininfo.WithRetryAfter(cfg.RetryAfter),
			blockchaininfo.WithMetrics(metrics.NewAPIClient(sourceBlockchainInfo)),
			blockchaininfo.WithLogger(logger.Named("blockchaininfo")),
		)
		return client, func() {}, nil
	case sourceNode:
		rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("init rpc client: %w", err)
		}
		shutdown := func() {
			rpcClient.Shutdown()
			rpcClient.WaitForShutdown()
		}
		rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network))
		resolver := bitcoin.NewNodePrevoutResolver(rpc, cfg.PrevoutWorkers)
		return bitcoin.NewNodeSource(rpc, resolver, cfg.Network, logger), shutdown, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}

func newStore(ctx context.Context, cfg config) (kvstore.Store, func(), error) {
	switch cfg.Store {
	case storeFile:
		store, err := kvstore.NewFileStore(cfg.StoreDir, metrics.NewKVStore(storeFile))
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case storePostgres:
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStore(pool, metrics.NewKVStore(storePostgres)), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
