// Package bitcoin holds the pure transaction math and the node-backed chain source.
package bitcoin

import (
	"errors"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

// ConfirmedThreshold is the confirmation count at which a transaction is final.
const ConfirmedThreshold = 6

// ErrInvalidTxID is returned for ids that are not 64 hex characters.
var ErrInvalidTxID = errors.New("invalid transaction id")

// ValidateTxID checks that id is a well-formed transaction hash.
func ValidateTxID(id string) error {
	if len(id) != chainhash.MaxHashStringSize {
		return fmt.Errorf("%w: %q", ErrInvalidTxID, id)
	}
	if _, err := chainhash.NewHashFromStr(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTxID, err)
	}
	return nil
}

// Confirmations returns latest-height+1 clamped at zero, or zero when the
// transaction has no block yet.
func Confirmations(blockHeight *uint64, latest uint64) uint64 {
	if blockHeight == nil || latest+1 <= *blockHeight {
		return 0
	}
	return latest - *blockHeight + 1
}

// StatusFor maps a confirmation count to a status.
func StatusFor(confirmations uint64) model.Status {
	switch {
	case confirmations >= ConfirmedThreshold:
		return model.StatusConfirmed
	case confirmations > 0:
		return model.StatusPending
	default:
		return model.StatusMempool
	}
}

// TotalInput sums the input values.
func TotalInput(tx *model.Transaction) btcutil.Amount {
	return sum(tx.InputValues)
}

// TotalOutput sums the output values.
func TotalOutput(tx *model.Transaction) btcutil.Amount {
	return sum(tx.OutputValues)
}

// FeeBTC returns the fee in BTC.
func FeeBTC(tx *model.Transaction) float64 {
	return tx.Fee.ToBTC()
}

// WeightUnits returns the reported weight, or size scaled by the witness factor.
func WeightUnits(tx *model.Transaction) uint64 {
	if tx.Weight != nil && *tx.Weight > 0 {
		return *tx.Weight
	}
	return tx.Size * blockchain.WitnessScaleFactor
}

// VirtualSize returns the reported vsize, or weight/4 rounded up.
func VirtualSize(tx *model.Transaction) uint64 {
	if tx.VSize != nil && *tx.VSize > 0 {
		return *tx.VSize
	}
	return (WeightUnits(tx) + blockchain.WitnessScaleFactor - 1) / blockchain.WitnessScaleFactor
}

// FeeRate formats fee per virtual byte with one decimal.
func FeeRate(tx *model.Transaction) string {
	vsize := VirtualSize(tx)
	if vsize == 0 {
		return "0.0 sat/vB"
	}
	return fmt.Sprintf("%.1f sat/vB", float64(tx.Fee)/float64(vsize))
}

// SegwitSavings returns the percentage saved by witness discounting. The
// second result is false when either the size or the reported vsize is unknown.
func SegwitSavings(tx *model.Transaction) (int, bool) {
	if tx.VSize == nil || *tx.VSize == 0 || tx.Size == 0 {
		return 0, false
	}
	savings := (float64(tx.Size) - float64(*tx.VSize)) / float64(tx.Size) * 100
	return int(math.Floor(savings + 0.5)), true
}

// Summarize computes every derived field for tx at the given chain tip.
func Summarize(tx *model.Transaction, latest uint64) model.TransactionSummary {
	confirmations := Confirmations(tx.BlockHeight, latest)
	status := StatusFor(confirmations)
	summary := model.TransactionSummary{
		Transaction:   tx,
		Confirmations: confirmations,
		Status:        status,
		StatusLabel:   status.Label(),
		TotalInputBTC: TotalInput(tx).ToBTC(),
		TotalOutBTC:   TotalOutput(tx).ToBTC(),
		FeeBTC:        FeeBTC(tx),
		WeightUnits:   WeightUnits(tx),
		VirtualSize:   VirtualSize(tx),
		FeeRate:       FeeRate(tx),
		InputCount:    len(tx.InputValues),
		OutputCount:   len(tx.OutputValues),
	}
	if savings, ok := SegwitSavings(tx); ok {
		summary.SegwitSavings = &savings
	}
	return summary
}

func sum(values []btcutil.Amount) btcutil.Amount {
	var total btcutil.Amount
	for _, v := range values {
		total += v
	}
	return total
}
