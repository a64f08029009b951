package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/pkg/safe"
	"go.uber.org/zap"
)

// ErrEmptyMempool is returned when the node reports no unconfirmed transactions.
var ErrEmptyMempool = errors.New("mempool is empty")

// NodeSource serves transactions and chain height from a Bitcoin Core node.
type NodeSource struct {
	client   NodeClient
	prevouts PrevoutResolver
	network  model.Network
	logger   *zap.Logger
}

// NewNodeSource builds a NodeSource. The client is usually an instrumented RPCClient.
func NewNodeSource(client NodeClient, prevouts PrevoutResolver, network model.Network, logger *zap.Logger) *NodeSource {
	return &NodeSource{
		client:   client,
		prevouts: prevouts,
		network:  network,
		logger:   logger.With(zap.String("network", string(network))),
	}
}

// Transaction fetches a transaction and resolves its input values.
func (s *NodeSource) Transaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := chainhash.NewHashFromStr(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTxID, err)
	}
	raw, err := s.client.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get raw transaction %s: %w", id, err)
	}

	prevTxIDs := make([]string, 0, len(raw.Vin))
	for _, vin := range raw.Vin {
		if !vin.IsCoinBase() {
			prevTxIDs = append(prevTxIDs, vin.Txid)
		}
	}
	prevOutputs, err := s.prevouts.Resolve(ctx, prevTxIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve inputs of %s: %w", id, err)
	}

	inputValues := make([]btcutil.Amount, 0, len(raw.Vin))
	for _, vin := range raw.Vin {
		if vin.IsCoinBase() {
			inputValues = append(inputValues, 0)
			continue
		}
		outputs := prevOutputs[vin.Txid]
		if int(vin.Vout) >= len(outputs) {
			return nil, fmt.Errorf("input %s:%d of %s not found", vin.Txid, vin.Vout, id)
		}
		inputValues = append(inputValues, outputs[vin.Vout])
	}

	var blockHeight *uint64
	if raw.BlockHash != "" {
		blockHeight, err = s.blockHeight(raw.BlockHash)
		if err != nil {
			return nil, err
		}
	}

	return BuildTransaction(raw, inputValues, blockHeight)
}

// LatestBlockHeight returns the node's chain tip height.
func (s *NodeSource) LatestBlockHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return safe.Uint64(count)
}

// LatestUnconfirmedTransaction returns the most recent mempool entry.
func (s *NodeSource) LatestUnconfirmedTransaction(ctx context.Context) (*model.UnconfirmedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mempool, err := s.client.GetRawMempoolVerbose()
	if err != nil {
		return nil, fmt.Errorf("get raw mempool: %w", err)
	}

	var (
		latestID   string
		latestTime int64
	)
	for txid, entry := range mempool {
		if latestID == "" || entry.Time > latestTime || (entry.Time == latestTime && txid > latestID) {
			latestID, latestTime = txid, entry.Time
		}
	}
	if latestID == "" {
		return nil, ErrEmptyMempool
	}
	s.logger.Debug("latest mempool entry", zap.String("txid", latestID), zap.Int("mempool_size", len(mempool)))

	return &model.UnconfirmedTransaction{
		Hash: latestID,
		Time: time.Unix(latestTime, 0).UTC(),
	}, nil
}

func (s *NodeSource) blockHeight(blockHash string) (*uint64, error) {
	hash, err := chainhash.NewHashFromStr(blockHash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %s: %w", blockHash, err)
	}
	header, err := s.client.GetBlockHeaderVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", blockHash, err)
	}
	height, err := safe.Uint64(header.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", blockHash, err)
	}
	return &height, nil
}
