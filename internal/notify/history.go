package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"go.uber.org/zap"
)

const (
	// HistoryKey is the store key of the persisted history.
	HistoryKey = "notification-history"
	// HistoryLimit caps the number of kept records.
	HistoryLimit = 50
)

// History is the newest-first list of delivered notifications.
type History struct {
	// persistMu orders writes to the store the same way as updates in memory.
	persistMu sync.Mutex
	mu        sync.Mutex
	store     Store
	logger    *zap.Logger
	records   []model.NotificationRecord
}

// LoadHistory reads the stored history. A missing or malformed value yields
// an empty history.
func LoadHistory(ctx context.Context, store Store, logger *zap.Logger) *History {
	h := &History{
		store:  store,
		logger: logger.Named("history"),
	}

	raw, err := store.Get(ctx, HistoryKey)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		return h
	case err != nil:
		h.logger.Warn("load history failed, starting empty", zap.Error(err))
		return h
	}

	var stored []model.NotificationRecord
	if err := json.Unmarshal(raw, &stored); err != nil {
		h.logger.Debug("malformed history, starting empty", zap.Error(err))
		return h
	}
	if len(stored) > HistoryLimit {
		stored = stored[:HistoryLimit]
	}
	h.records = stored
	return h
}

// Add prepends record and drops the oldest entries beyond HistoryLimit.
func (h *History) Add(ctx context.Context, record model.NotificationRecord) error {
	h.persistMu.Lock()
	defer h.persistMu.Unlock()

	h.mu.Lock()
	next := make([]model.NotificationRecord, 0, min(len(h.records)+1, HistoryLimit))
	next = append(next, record)
	next = append(next, h.records...)
	if len(next) > HistoryLimit {
		next = next[:HistoryLimit]
	}
	h.records = next
	h.mu.Unlock()

	return h.persist(ctx, next)
}

// List returns a copy of the records, newest first.
func (h *History) List() []model.NotificationRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]model.NotificationRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Clear removes every record.
func (h *History) Clear(ctx context.Context) error {
	h.persistMu.Lock()
	defer h.persistMu.Unlock()

	h.mu.Lock()
	h.records = nil
	h.mu.Unlock()

	return h.persist(ctx, []model.NotificationRecord{})
}

func (h *History) persist(ctx context.Context, records []model.NotificationRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := h.store.Put(ctx, HistoryKey, raw); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}
