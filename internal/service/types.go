package service

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Tracker interface {
		Track(id string) error
		Snapshot() (model.StatusSnapshot, error)
		Refresh() error
		Stop() error
	}
	Notifier interface {
		Preferences() model.NotificationPreferences
		SetPreferences(ctx context.Context, next model.NotificationPreferences) (model.NotificationPreferences, error)
		SetVisual(ctx context.Context, on bool) (model.NotificationPreferences, error)
		SetAudio(ctx context.Context, on bool) (model.NotificationPreferences, error)
		ToggleVisual(ctx context.Context) (model.NotificationPreferences, error)
		ToggleAudio(ctx context.Context) (model.NotificationPreferences, error)
		History() []model.NotificationRecord
		ClearHistory(ctx context.Context) error
	}
	ChainSource interface {
		Transaction(ctx context.Context, id string) (*model.Transaction, error)
		LatestBlockHeight(ctx context.Context) (uint64, error)
		LatestUnconfirmedTransaction(ctx context.Context) (*model.UnconfirmedTransaction, error)
	}
	SnapshotHistory interface {
		SnapshotHistory(ctx context.Context, txid string, limit uint64) ([]model.SnapshotEntry, error)
	}
)
