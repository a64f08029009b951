package tracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		Transaction(ctx context.Context, id string) (*model.Transaction, error)
		LatestBlockHeight(ctx context.Context) (uint64, error)
		LatestUnconfirmedTransaction(ctx context.Context) (*model.UnconfirmedTransaction, error)
	}
	Notifier interface {
		Notify(ctx context.Context, message string) error
	}
	Metrics interface {
		ObserveTick(err error, started time.Time)
		ObserveNotification()
		ObserveStale()
	}
	SnapshotRecorder interface {
		Record(ctx context.Context, snapshot model.StatusSnapshot) error
	}
	SnapshotRepository interface {
		InsertSnapshots(ctx context.Context, snapshots []model.SnapshotEntry) error
	}
)
