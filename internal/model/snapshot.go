package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// SnapshotEntry is one stored poll result of a tracked transaction.
type SnapshotEntry struct {
	TxID          string         `json:"txid"`
	Status        Status         `json:"status"`
	Confirmations uint64         `json:"confirmations"`
	BlockHeight   *uint64        `json:"block_height,omitempty"`
	LatestBlock   uint64         `json:"latest_block"`
	Fee           btcutil.Amount `json:"fee"`
	VSize         uint64         `json:"vsize"`
	Error         string         `json:"error,omitempty"`
	RefreshedAt   time.Time      `json:"refreshed_at"`
}
