package transport

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Service interface {
		GetLatestTransaction(ctx context.Context) (*model.UnconfirmedTransaction, error)
		TrackTransaction(ctx context.Context, id string) (model.StatusSnapshot, error)
		GetStatus(ctx context.Context) (model.StatusSnapshot, error)
		Refresh(ctx context.Context) error
		StopTracking(ctx context.Context) error
		TransactionSummary(ctx context.Context, id string) (model.TransactionSummary, error)
		SnapshotHistory(ctx context.Context, txid string, limit uint64) ([]model.SnapshotEntry, error)
		ToggleVisual(ctx context.Context) (model.NotificationPreferences, error)
		ToggleAudio(ctx context.Context) (model.NotificationPreferences, error)
		UpdateNotificationSettings(ctx context.Context, prefs model.NotificationPreferences) (model.NotificationPreferences, error)
		GetNotificationSettings(ctx context.Context) model.NotificationPreferences
		GetNotificationHistory(ctx context.Context) []model.NotificationRecord
		ClearNotificationHistory(ctx context.Context) error
		Dispatch(ctx context.Context, name string, payload json.RawMessage) (any, error)
	}
)
