package bitcoin

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// NodeClient is the subset of the btcd rpcclient used here.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
		GetRawMempoolVerbose() (map[string]btcjson.GetRawMempoolVerboseResult, error)
	}
	// PrevoutResolver returns the output values of previous transactions.
	PrevoutResolver interface {
		Resolve(ctx context.Context, txids []string) (map[string][]btcutil.Amount, error)
	}
)
