package model

import "time"

// Status is the tri-state confirmation label of a tracked transaction.
type Status string

const (
	StatusMempool   Status = "mempool"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Label returns the human readable status name.
func (s Status) Label() string {
	switch s {
	case StatusConfirmed:
		return "Confirmed"
	case StatusPending:
		return "Pending"
	case StatusMempool:
		return "In Mempool"
	default:
		return "Unknown"
	}
}

// Description returns a one sentence explanation of the status.
func (s Status) Description() string {
	switch s {
	case StatusConfirmed:
		return "Transaction confirmed in blockchain (6+ confirmations)"
	case StatusPending:
		return "Transaction included in a block, awaiting more confirmations"
	case StatusMempool:
		return "Transaction is in the memory pool, waiting to be included in a block"
	default:
		return "Unknown transaction status"
	}
}

// PollState is the state of the poll loop for the tracked transaction.
type PollState string

const (
	PollIdle     PollState = "idle"
	PollFetching PollState = "fetching"
	PollSettled  PollState = "settled"
	PollFailed   PollState = "failed"
)

// StatusSnapshot is the derived view state of the tracked transaction.
// It has a single writer, the tracker that owns it.
type StatusSnapshot struct {
	TxID          string       `json:"txid"`
	Transaction   *Transaction `json:"transaction,omitempty"`
	Confirmations uint64       `json:"confirmations"`
	Status        Status       `json:"status"`
	Error         string       `json:"error,omitempty"`
	LatestBlock   uint64       `json:"latest_block"`
	LastRefresh   time.Time    `json:"last_refresh"`
	NextRefresh   time.Time    `json:"next_refresh"`
	State         PollState    `json:"state"`
}

// Settled reports whether the snapshot has been computed at least once.
func (s StatusSnapshot) Settled() bool {
	return !s.LastRefresh.IsZero()
}
