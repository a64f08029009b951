package blockchaininfo

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

type rawTx struct {
	Hash        string     `json:"hash"`
	Version     int32      `json:"ver"`
	Size        uint64     `json:"size"`
	Weight      *uint64    `json:"weight"`
	VSize       *uint64    `json:"vsize"`
	Fee         int64      `json:"fee"`
	LockTime    uint32     `json:"lock_time"`
	Time        int64      `json:"time"`
	BlockHeight *uint64    `json:"block_height"`
	Inputs      []rawInput `json:"inputs"`
	Out         []rawValue `json:"out"`
}

type rawInput struct {
	PrevOut *rawValue `json:"prev_out"`
}

type rawValue struct {
	Value int64 `json:"value"`
}

type latestBlock struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
	Time   int64  `json:"time"`
}

type unconfirmedListing struct {
	Txs []unconfirmedTx `json:"txs"`
}

type unconfirmedTx struct {
	Hash        string  `json:"hash"`
	Time        int64   `json:"time"`
	BlockHeight *uint64 `json:"block_height"`
}

func (r rawTx) toModel() *model.Transaction {
	tx := &model.Transaction{
		Hash:         r.Hash,
		Time:         time.Unix(r.Time, 0).UTC(),
		BlockHeight:  r.BlockHeight,
		Size:         r.Size,
		Fee:          btcutil.Amount(r.Fee),
		InputValues:  make([]btcutil.Amount, 0, len(r.Inputs)),
		OutputValues: make([]btcutil.Amount, 0, len(r.Out)),
		Weight:       r.Weight,
		VSize:        r.VSize,
		Version:      r.Version,
		LockTime:     r.LockTime,
	}
	for _, in := range r.Inputs {
		var value btcutil.Amount
		if in.PrevOut != nil {
			value = btcutil.Amount(in.PrevOut.Value)
		}
		tx.InputValues = append(tx.InputValues, value)
	}
	for _, out := range r.Out {
		tx.OutputValues = append(tx.OutputValues, btcutil.Amount(out.Value))
	}
	return tx
}

func (u unconfirmedTx) toModel() *model.UnconfirmedTransaction {
	return &model.UnconfirmedTransaction{
		Hash:        u.Hash,
		Time:        time.Unix(u.Time, 0).UTC(),
		BlockHeight: u.BlockHeight,
	}
}
