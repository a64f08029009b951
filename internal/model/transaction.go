package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// Transaction is a single fetched view of a bitcoin transaction. A new value
// is produced on every fetch; callers never mutate it in place.
type Transaction struct {
	Hash         string           `json:"hash"`
	Time         time.Time        `json:"time"`
	BlockHeight  *uint64          `json:"block_height,omitempty"`
	Size         uint64           `json:"size"`
	Fee          btcutil.Amount   `json:"fee"`
	InputValues  []btcutil.Amount `json:"input_values"`
	OutputValues []btcutil.Amount `json:"output_values"`
	Weight       *uint64          `json:"weight,omitempty"`
	VSize        *uint64          `json:"vsize,omitempty"`
	Version      int32            `json:"version"`
	LockTime     uint32           `json:"lock_time"`
}

// Confirmed reports whether the transaction has been included in a block.
func (t *Transaction) Confirmed() bool {
	return t != nil && t.BlockHeight != nil
}

// UnconfirmedTransaction is the head of the remote unconfirmed listing.
type UnconfirmedTransaction struct {
	Hash        string    `json:"hash"`
	Time        time.Time `json:"time"`
	BlockHeight *uint64   `json:"block_height,omitempty"`
}

// TransactionSummary is a Transaction together with its derived fields.
type TransactionSummary struct {
	Transaction   *Transaction `json:"transaction"`
	Confirmations uint64       `json:"confirmations"`
	Status        Status       `json:"status"`
	StatusLabel   string       `json:"status_label"`
	TotalInputBTC float64      `json:"total_input_btc"`
	TotalOutBTC   float64      `json:"total_output_btc"`
	FeeBTC        float64      `json:"fee_btc"`
	WeightUnits   uint64       `json:"weight_units"`
	VirtualSize   uint64       `json:"virtual_size"`
	FeeRate       string       `json:"fee_rate"`
	SegwitSavings *int         `json:"segwit_savings,omitempty"`
	InputCount    int          `json:"input_count"`
	OutputCount   int          `json:"output_count"`
}

// Uint64Ptr returns a pointer to v.
func Uint64Ptr(v uint64) *uint64 {
	return &v
}
