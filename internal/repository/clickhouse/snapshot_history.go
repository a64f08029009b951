package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

const snapshotHistoryQuery = `
SELECT
	status,
	confirmations,
	block_height,
	latest_block,
	fee,
	vsize,
	error,
	refreshed_at
FROM txwatch_snapshots
WHERE txid = CAST(? AS FixedString(64))
ORDER BY refreshed_at DESC
LIMIT ?`

// SnapshotHistory returns the most recent poll results for txid, newest first.
func (r *Repository) SnapshotHistory(ctx context.Context, txid string, limit uint64) ([]model.SnapshotEntry, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("snapshot_history", err, start)
	}()

	rows, err := r.conn.Query(ctx, snapshotHistoryQuery, txid, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshot history: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var entries []model.SnapshotEntry
	for rows.Next() {
		var (
			entry  model.SnapshotEntry
			status string
			fee    int64
		)
		if err = rows.Scan(
			&status,
			&entry.Confirmations,
			&entry.BlockHeight,
			&entry.LatestBlock,
			&fee,
			&entry.VSize,
			&entry.Error,
			&entry.RefreshedAt,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		entry.TxID = txid
		entry.Status = model.Status(status)
		entry.Fee = btcutil.Amount(fee)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return entries, nil
}
