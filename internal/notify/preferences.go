// Package notify keeps notification preferences and history and delivers
// change notifications to the event bus.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"go.uber.org/zap"
)

// SettingsKey is the store key of the persisted preferences.
const SettingsKey = "notification-settings"

// Preferences holds the current channel selection.
type Preferences struct {
	// persistMu keeps published and stored values in update order.
	persistMu sync.Mutex
	mu        sync.Mutex
	store     Store
	bus       *events.Bus
	logger    *zap.Logger
	current   model.NotificationPreferences
}

// LoadPreferences reads the stored preferences, falling back to defaults when
// the value is missing or malformed.
func LoadPreferences(ctx context.Context, store Store, bus *events.Bus, logger *zap.Logger) *Preferences {
	p := &Preferences{
		store:   store,
		bus:     bus,
		logger:  logger.Named("preferences"),
		current: model.DefaultNotificationPreferences(),
	}

	raw, err := store.Get(ctx, SettingsKey)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		return p
	case err != nil:
		p.logger.Warn("load preferences failed, using defaults", zap.Error(err))
		return p
	}

	var stored model.NotificationPreferences
	if err := json.Unmarshal(raw, &stored); err != nil {
		p.logger.Debug("malformed preferences, using defaults", zap.Error(err))
		return p
	}
	p.current = stored
	return p
}

// Get returns the current preferences.
func (p *Preferences) Get() model.NotificationPreferences {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Update applies fn to the current preferences, persists the result and
// publishes it. The in-memory value changes even when persisting fails.
func (p *Preferences) Update(ctx context.Context, fn func(model.NotificationPreferences) model.NotificationPreferences) (prev, next model.NotificationPreferences, err error) {
	p.persistMu.Lock()
	defer p.persistMu.Unlock()

	p.mu.Lock()
	prev = p.current
	next = fn(prev)
	p.current = next
	p.mu.Unlock()

	if p.bus != nil {
		p.bus.Settings.Publish(next)
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return prev, next, fmt.Errorf("encode preferences: %w", err)
	}
	if err = p.store.Put(ctx, SettingsKey, raw); err != nil {
		return prev, next, fmt.Errorf("persist preferences: %w", err)
	}
	return prev, next, nil
}
