package tracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/pkg/batcher"
	"go.uber.org/zap"
)

// SnapshotWriter batches snapshots into the snapshot repository.
type SnapshotWriter struct {
	repo    SnapshotRepository
	logger  *zap.Logger
	now     func() time.Time
	batcher *batcher.Batcher[model.SnapshotEntry]
}

// NewSnapshotWriter constructs a SnapshotWriter. Start must be called before Record.
func NewSnapshotWriter(repo SnapshotRepository, logger *zap.Logger) *SnapshotWriter {
	w := &SnapshotWriter{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	w.batcher = batcher.New[model.SnapshotEntry](
		logger.Named("snapshotBatcher"),
		w.flush,
		snapshotBatchSize,
		snapshotFlushInterval,
		snapshotFlushRPS,
	)
	return w
}

func (w *SnapshotWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *SnapshotWriter) Stop() {
	w.batcher.Stop()
}

// Record queues a settled or failed snapshot. Snapshots taken while a poll
// is in flight are skipped.
func (w *SnapshotWriter) Record(ctx context.Context, snapshot model.StatusSnapshot) error {
	if snapshot.State != model.PollSettled && snapshot.State != model.PollFailed {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.batcher.Add(ctx, snapshotEntry(snapshot, w.now()))
}

func (w *SnapshotWriter) flush(ctx context.Context, entries []model.SnapshotEntry) error {
	if err := w.repo.InsertSnapshots(ctx, entries); err != nil {
		return err
	}
	w.logger.Debug("InsertSnapshots", zap.Int("count", len(entries)))
	return nil
}

func snapshotEntry(s model.StatusSnapshot, now time.Time) model.SnapshotEntry {
	entry := model.SnapshotEntry{
		TxID:          s.TxID,
		Status:        s.Status,
		Confirmations: s.Confirmations,
		LatestBlock:   s.LatestBlock,
		Error:         s.Error,
		RefreshedAt:   s.LastRefresh,
	}
	if s.State == model.PollFailed || entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = now
	}
	if tx := s.Transaction; tx != nil {
		entry.BlockHeight = tx.BlockHeight
		entry.Fee = tx.Fee
		entry.VSize = bitcoin.VirtualSize(tx)
	}
	return entry
}
