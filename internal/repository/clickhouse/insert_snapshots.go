package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

const insertSnapshotsQuery = `
INSERT INTO txwatch_snapshots (
	txid,
	status,
	confirmations,
	block_height,
	latest_block,
	fee,
	vsize,
	error,
	refreshed_at
) VALUES`

// InsertSnapshots stores poll results in ClickHouse.
func (r *Repository) InsertSnapshots(ctx context.Context, snapshots []model.SnapshotEntry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_snapshots", err, start)
	}()

	if len(snapshots) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSnapshotsQuery)
	if err != nil {
		return fmt.Errorf("prepare snapshots batch: %w", err)
	}

	for _, s := range snapshots {
		if err = batch.Append(
			s.TxID,
			string(s.Status),
			s.Confirmations,
			s.BlockHeight,
			s.LatestBlock,
			int64(s.Fee),
			s.VSize,
			s.Error,
			s.RefreshedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append snapshot: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert snapshots: %w", err)
	}
	return nil
}
