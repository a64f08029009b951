package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"go.uber.org/zap"
)

type config struct {
	source      ChainSource
	notifier    Notifier
	metrics     Metrics
	recorder    SnapshotRecorder
	bus         *events.Bus
	logger      *zap.Logger
	interval    time.Duration
	blockSignal <-chan struct{}
}

// Option customizes a Manager.
type Option func(*config)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithBlockSignal triggers an early refresh whenever ch fires.
func WithBlockSignal(ch <-chan struct{}) Option {
	return func(c *config) {
		c.blockSignal = ch
	}
}

// WithRecorder stores every snapshot with r.
func WithRecorder(r SnapshotRecorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// Manager owns the tracker of the currently followed transaction.
type Manager struct {
	cfg        config
	generation atomic.Uint64

	ctx    context.Context
	stop   context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	active *Tracker
	cancel context.CancelFunc
}

// NewManager builds a Manager with dependencies.
func NewManager(source ChainSource, notifier Notifier, metrics Metrics, bus *events.Bus, logger *zap.Logger, opts ...Option) (*Manager, error) {
	if source == nil {
		return nil, errors.New("tracker source is required")
	}
	if notifier == nil {
		return nil, errors.New("tracker notifier is required")
	}
	if metrics == nil {
		return nil, errors.New("tracker metrics is required")
	}

	cfg := config{
		source:   source,
		notifier: notifier,
		metrics:  metrics,
		bus:      bus,
		logger:   logger.Named("tracker"),
		interval: defaultInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Manager{cfg: cfg, ctx: ctx, stop: stop}, nil
}

// Track starts following id, replacing any transaction tracked before.
// Results still in flight for the previous id are discarded.
func (m *Manager) Track(id string) error {
	id = strings.TrimSpace(id)
	if err := bitcoin.ValidateTxID(id); err != nil {
		return err
	}
	if m.ctx.Err() != nil {
		return fmt.Errorf("track %s: %w", id, m.ctx.Err())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.detachLocked()
	generation := m.generation.Add(1)
	t := newTracker(id, generation, &m.generation, m.cfg)
	ctx, cancel := context.WithCancel(m.ctx)
	m.active, m.cancel = t, cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			t.logger.Error("tracker stopped", zap.Error(err))
		}
	}()

	m.cfg.logger.Info("tracking transaction", zap.String("txid", id), zap.Uint64("generation", generation))
	return nil
}

// Stop cancels the active tracker.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return ErrNotTracking
	}
	m.detachLocked()
	m.generation.Add(1)
	return nil
}

// Snapshot returns the derived state of the tracked transaction.
func (m *Manager) Snapshot() (model.StatusSnapshot, error) {
	m.mu.Lock()
	t := m.active
	m.mu.Unlock()

	if t == nil {
		return model.StatusSnapshot{}, ErrNotTracking
	}
	return t.Snapshot(), nil
}

// Refresh forces an immediate poll.
func (m *Manager) Refresh() error {
	m.mu.Lock()
	t := m.active
	m.mu.Unlock()

	if t == nil {
		return ErrNotTracking
	}
	t.Refresh()
	return nil
}

// Close stops every tracker and waits for their loops to return.
func (m *Manager) Close() {
	m.mu.Lock()
	m.detachLocked()
	m.generation.Add(1)
	m.mu.Unlock()

	m.stop()
	m.wg.Wait()
}

func (m *Manager) detachLocked() {
	if m.cancel != nil {
		m.cancel()
	}
	m.active, m.cancel = nil, nil
}
