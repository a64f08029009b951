package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"go.uber.org/zap"
)

// Tracker polls a single transaction until its context is canceled.
type Tracker struct {
	txid       string
	generation uint64
	current    *atomic.Uint64

	source   ChainSource
	notifier Notifier
	metrics  Metrics
	recorder SnapshotRecorder
	bus      *events.Bus
	logger   *zap.Logger

	interval    time.Duration
	blockSignal <-chan struct{}
	wake        chan struct{}
	now         func() time.Time
	countdown   func(ctx context.Context, d, step time.Duration, wake <-chan struct{}, tick func(time.Duration)) error

	mu       sync.RWMutex
	snapshot model.StatusSnapshot
}

// Run polls immediately and then after every countdown until ctx is done.
func (t *Tracker) Run(ctx context.Context) error {
	if t.blockSignal != nil {
		go t.forwardBlockSignal(ctx)
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := t.tick(ctx); err != nil {
			if errors.Is(err, errStaleResult) {
				return nil
			}
			t.logger.Warn("poll failed", zap.Error(err))
		}
		if err := t.wait(ctx); err != nil {
			return err
		}
	}
}

// Snapshot returns a copy of the latest derived state.
func (t *Tracker) Snapshot() model.StatusSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot
}

// Refresh cuts the current countdown short.
func (t *Tracker) Refresh() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

func (t *Tracker) tick(ctx context.Context) (err error) {
	started := t.now()
	defer func() {
		t.metrics.ObserveTick(err, started)
	}()

	t.update(func(s *model.StatusSnapshot) {
		s.State = model.PollFetching
	})

	var (
		wg        sync.WaitGroup
		tx        *model.Transaction
		txErr     error
		latest    uint64
		latestErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		tx, txErr = t.source.Transaction(ctx, t.txid)
	}()
	go func() {
		defer wg.Done()
		latest, latestErr = t.source.LatestBlockHeight(ctx)
	}()
	wg.Wait()

	if t.superseded(ctx) {
		return t.discard()
	}

	now := t.now()
	switch {
	case txErr != nil:
		err = fmt.Errorf("fetch transaction: %w", txErr)
	case latestErr != nil:
		err = fmt.Errorf("fetch latest block height: %w", latestErr)
	}
	if err != nil {
		failed := t.update(func(s *model.StatusSnapshot) {
			s.Error = err.Error()
			s.State = model.PollFailed
			s.NextRefresh = now.Add(t.interval)
		})
		t.record(ctx, failed)
		return err
	}

	confirmations := bitcoin.Confirmations(tx.BlockHeight, latest)
	var prev model.StatusSnapshot
	next := t.update(func(s *model.StatusSnapshot) {
		prev = *s
		*s = model.StatusSnapshot{
			TxID:          t.txid,
			Transaction:   tx,
			Confirmations: confirmations,
			Status:        bitcoin.StatusFor(confirmations),
			LatestBlock:   latest,
			LastRefresh:   now,
			NextRefresh:   now.Add(t.interval),
			State:         model.PollSettled,
		}
	})
	if t.superseded(ctx) {
		return t.discard()
	}
	if t.bus != nil {
		t.bus.Transaction.Publish(*tx)
	}
	t.record(ctx, next)

	message, ok := changeMessage(prev, next)
	if !ok {
		return nil
	}
	// Record may block long enough for the id to be replaced.
	if t.superseded(ctx) {
		return t.discard()
	}
	t.metrics.ObserveNotification()
	if nerr := t.notifier.Notify(ctx, message); nerr != nil {
		t.logger.Warn("notification not stored", zap.Error(nerr))
	}
	return nil
}

// superseded reports whether this tick's results must be dropped: the id was
// replaced or the tracker's context ended.
func (t *Tracker) superseded(ctx context.Context) bool {
	return ctx.Err() != nil || !t.live()
}

func (t *Tracker) discard() error {
	t.metrics.ObserveStale()
	t.logger.Debug("discarding stale poll result")
	return errStaleResult
}

// update mutates the snapshot under lock and publishes the result.
func (t *Tracker) update(fn func(s *model.StatusSnapshot)) model.StatusSnapshot {
	t.mu.Lock()
	fn(&t.snapshot)
	snapshot := t.snapshot
	t.mu.Unlock()

	if t.bus != nil && t.live() {
		t.bus.Status.Publish(snapshot)
	}
	return snapshot
}

func (t *Tracker) record(ctx context.Context, snapshot model.StatusSnapshot) {
	if t.recorder == nil {
		return
	}
	if err := t.recorder.Record(ctx, snapshot); err != nil && ctx.Err() == nil {
		t.logger.Warn("snapshot not recorded", zap.Error(err))
	}
}

func (t *Tracker) wait(ctx context.Context) error {
	return t.countdown(ctx, t.interval, countdownStep, t.wake, func(remaining time.Duration) {
		if t.bus != nil {
			t.bus.Countdown.Publish(remaining.Round(time.Second))
		}
	})
}

func (t *Tracker) forwardBlockSignal(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-t.blockSignal:
			if !ok {
				return
			}
			t.logger.Debug("new block, refreshing early")
			t.Refresh()
		}
	}
}

func (t *Tracker) live() bool {
	return t.current == nil || t.current.Load() == t.generation
}

// changeMessage decides whether a settled poll warrants a notification.
// The first settle for a transaction never does.
func changeMessage(prev, next model.StatusSnapshot) (string, bool) {
	if !prev.Settled() {
		return "", false
	}

	confirmationsChanged := prev.Confirmations != next.Confirmations && next.Confirmations > 0
	switch {
	case confirmationsChanged:
		return fmt.Sprintf("Confirmations: %d", next.Confirmations), true
	case prev.Status != next.Status:
		return fmt.Sprintf("Status: %s - %s", next.Status.Label(), next.Status.Description()), true
	default:
		return "", false
	}
}

func newTracker(txid string, generation uint64, current *atomic.Uint64, cfg config) *Tracker {
	return &Tracker{
		txid:        txid,
		generation:  generation,
		current:     current,
		source:      cfg.source,
		notifier:    cfg.notifier,
		metrics:     cfg.metrics,
		recorder:    cfg.recorder,
		bus:         cfg.bus,
		logger:      cfg.logger.With(zap.String("txid", txid), zap.Uint64("generation", generation)),
		interval:    cfg.interval,
		blockSignal: cfg.blockSignal,
		wake:        make(chan struct{}, 1),
		now:         time.Now,
		countdown:   clock.Countdown,
		snapshot: model.StatusSnapshot{
			TxID:   txid,
			Status: model.StatusMempool,
			State:  model.PollIdle,
		},
	}
}
