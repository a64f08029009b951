// Package service exposes the tracker and notification operations as named
// commands shared by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"go.uber.org/zap"
)

// ErrHistoryDisabled is returned when no snapshot store is configured.
var ErrHistoryDisabled = errors.New("snapshot history is not configured")

const defaultHistoryLimit = 100

// Service is the command surface of a running tracker.
type Service struct {
	tracker   Tracker
	notifier  Notifier
	source    ChainSource
	snapshots SnapshotHistory
	bus       *events.Bus
	logger    *zap.Logger
}

// New builds a Service. snapshots and bus may be nil.
func New(tracker Tracker, notifier Notifier, source ChainSource, snapshots SnapshotHistory, bus *events.Bus, logger *zap.Logger) (*Service, error) {
	if tracker == nil || notifier == nil || source == nil {
		return nil, errors.New("service tracker, notifier and source are required")
	}
	return &Service{
		tracker:   tracker,
		notifier:  notifier,
		source:    source,
		snapshots: snapshots,
		bus:       bus,
		logger:    logger.Named("service"),
	}, nil
}

// GetLatestTransaction returns the newest unconfirmed transaction and
// publishes it as a transaction update.
func (s *Service) GetLatestTransaction(ctx context.Context) (*model.UnconfirmedTransaction, error) {
	tx, err := s.source.LatestUnconfirmedTransaction(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest unconfirmed transaction: %w", err)
	}
	if s.bus != nil {
		s.bus.Transaction.Publish(model.Transaction{
			Hash:        tx.Hash,
			Time:        tx.Time,
			BlockHeight: tx.BlockHeight,
		})
	}
	return tx, nil
}

// TrackTransaction starts following id and returns its initial snapshot.
func (s *Service) TrackTransaction(_ context.Context, id string) (model.StatusSnapshot, error) {
	if err := s.tracker.Track(id); err != nil {
		return model.StatusSnapshot{}, err
	}
	return s.tracker.Snapshot()
}

// GetStatus returns the snapshot of the tracked transaction.
func (s *Service) GetStatus(context.Context) (model.StatusSnapshot, error) {
	return s.tracker.Snapshot()
}

// Refresh forces an immediate poll of the tracked transaction.
func (s *Service) Refresh(context.Context) error {
	return s.tracker.Refresh()
}

// StopTracking cancels the active poll loop.
func (s *Service) StopTracking(context.Context) error {
	return s.tracker.Stop()
}

// TransactionSummary fetches id once and derives its display fields.
func (s *Service) TransactionSummary(ctx context.Context, id string) (model.TransactionSummary, error) {
	id = strings.TrimSpace(id)
	if err := bitcoin.ValidateTxID(id); err != nil {
		return model.TransactionSummary{}, err
	}

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
		tx, txErr = s.source.Transaction(ctx, id)
	}()
	go func() {
		defer wg.Done()
		latest, latestErr = s.source.LatestBlockHeight(ctx)
	}()
	wg.Wait()

	if txErr != nil {
		return model.TransactionSummary{}, fmt.Errorf("fetch transaction: %w", txErr)
	}
	if latestErr != nil {
		return model.TransactionSummary{}, fmt.Errorf("fetch latest block height: %w", latestErr)
	}
	return bitcoin.Summarize(tx, latest), nil
}

// SnapshotHistory returns stored poll results for txid, newest first.
func (s *Service) SnapshotHistory(ctx context.Context, txid string, limit uint64) ([]model.SnapshotEntry, error) {
	if s.snapshots == nil {
		return nil, ErrHistoryDisabled
	}
	txid = strings.TrimSpace(txid)
	if err := bitcoin.ValidateTxID(txid); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	return s.snapshots.SnapshotHistory(ctx, txid, limit)
}

func (s *Service) EnableVisual(ctx context.Context) (model.NotificationPreferences, error) {
	return s.notifier.SetVisual(ctx, true)
}

func (s *Service) DisableVisual(ctx context.Context) (model.NotificationPreferences, error) {
	return s.notifier.SetVisual(ctx, false)
}

func (s *Service) ToggleVisual(ctx context.Context) (model.NotificationPreferences, error) {
	return s.notifier.ToggleVisual(ctx)
}

func (s *Service) EnableAudio(ctx context.Context) (model.NotificationPreferences, error) {
	return s.notifier.SetAudio(ctx, true)
}

func (s *Service) DisableAudio(ctx context.Context) (model.NotificationPreferences, error) {
	return s.notifier.SetAudio(ctx, false)
}

func (s *Service) ToggleAudio(ctx context.Context) (model.NotificationPreferences, error) {
	return s.notifier.ToggleAudio(ctx)
}

// UpdateNotificationSettings replaces both channel flags.
func (s *Service) UpdateNotificationSettings(ctx context.Context, prefs model.NotificationPreferences) (model.NotificationPreferences, error) {
	return s.notifier.SetPreferences(ctx, prefs)
}

func (s *Service) GetNotificationSettings(context.Context) model.NotificationPreferences {
	return s.notifier.Preferences()
}

func (s *Service) GetNotificationHistory(context.Context) []model.NotificationRecord {
	return s.notifier.History()
}

func (s *Service) ClearNotificationHistory(ctx context.Context) error {
	return s.notifier.ClearHistory(ctx)
}
