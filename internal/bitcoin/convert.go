package bitcoin

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/pkg/safe"
)

// BtcToAmount converts a BTC value reported by the node to satoshis.
func BtcToAmount(value float64) (btcutil.Amount, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return amt, nil
}

// OutputValues converts the outputs of a verbose transaction to satoshis.
func OutputValues(tx *btcjson.TxRawResult) ([]btcutil.Amount, error) {
	values := make([]btcutil.Amount, 0, len(tx.Vout))
	for _, vout := range tx.Vout {
		amt, err := BtcToAmount(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", tx.Txid, vout.N, err)
		}
		values = append(values, amt)
	}
	return values, nil
}

// BuildTransaction maps a verbose node transaction onto model.Transaction.
// Input values must be supplied in vin order; blockHeight is nil for
// unconfirmed transactions.
func BuildTransaction(src *btcjson.TxRawResult, inputValues []btcutil.Amount, blockHeight *uint64) (*model.Transaction, error) {
	size, err := safe.Uint64(src.Size)
	if err != nil {
		return nil, fmt.Errorf("tx %s size: %w", src.Txid, err)
	}
	vsize, err := safe.Uint64(src.Vsize)
	if err != nil {
		return nil, fmt.Errorf("tx %s vsize: %w", src.Txid, err)
	}
	weight, err := safe.Uint64(src.Weight)
	if err != nil {
		return nil, fmt.Errorf("tx %s weight: %w", src.Txid, err)
	}
	outputs, err := OutputValues(src)
	if err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		Hash:         src.Txid,
		BlockHeight:  blockHeight,
		Size:         size,
		InputValues:  inputValues,
		OutputValues: outputs,
		Version:      int32(src.Version),
		LockTime:     src.LockTime,
	}
	if src.Time > 0 {
		tx.Time = time.Unix(src.Time, 0).UTC()
	}
	if weight > 0 {
		tx.Weight = &weight
	}
	if vsize > 0 {
		tx.VSize = &vsize
	}

	in, out := TotalInput(tx), TotalOutput(tx)
	if len(inputValues) > 0 && in > out {
		tx.Fee = in - out
	}
	return tx, nil
}
