package bitcoin

import (
	"context"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/pkg/workerpool"
)

// prevoutCacheLimit bounds the number of cached transactions. It is a var to
// allow overriding in tests.
var prevoutCacheLimit = 10_000

// NodePrevoutResolver fetches previous transactions from the node and keeps
// their output values. Spent outputs never change, so cached entries never expire.
type NodePrevoutResolver struct {
	client      NodeClient
	workerCount int

	mu    sync.Mutex
	cache map[string][]btcutil.Amount
}

// NewNodePrevoutResolver constructs a resolver fetching with workerCount workers.
func NewNodePrevoutResolver(client NodeClient, workerCount int) *NodePrevoutResolver {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &NodePrevoutResolver{
		client:      client,
		workerCount: workerCount,
		cache:       make(map[string][]btcutil.Amount),
	}
}

// Resolve returns the output values for every txid, consulting the cache first
// and fetching each missing transaction once.
func (r *NodePrevoutResolver) Resolve(ctx context.Context, txids []string) (map[string][]btcutil.Amount, error) {
	result := make(map[string][]btcutil.Amount, len(txids))
	seen := make(map[string]struct{}, len(txids))
	missing := make([]string, 0, len(txids))

	r.mu.Lock()
	for _, txid := range txids {
		if _, dup := seen[txid]; dup {
			continue
		}
		seen[txid] = struct{}{}
		if values, ok := r.cache[txid]; ok {
			result[txid] = values
			continue
		}
		missing = append(missing, txid)
	}
	r.mu.Unlock()

	if len(missing) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	fetched := make(map[string][]btcutil.Amount, len(missing))
	err := workerpool.Process(ctx, min(r.workerCount, len(missing)), missing, func(ctx context.Context, txid string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		hash, err := chainhash.NewHashFromStr(txid)
		if err != nil {
			return fmt.Errorf("parse prev txid %s: %w", txid, err)
		}
		raw, err := r.client.GetRawTransactionVerbose(hash)
		if err != nil {
			return fmt.Errorf("fetch prev tx %s: %w", txid, err)
		}
		values, err := OutputValues(raw)
		if err != nil {
			return err
		}
		mu.Lock()
		fetched[txid] = values
		mu.Unlock()
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if len(r.cache)+len(fetched) > prevoutCacheLimit {
		r.cache = make(map[string][]btcutil.Amount, len(fetched))
	}
	for txid, values := range fetched {
		r.cache[txid] = values
		result[txid] = values
	}
	r.mu.Unlock()

	return result, nil
}
