// Package kvstore persists small JSON documents by key.
package kvstore

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

type (
	// Store reads and writes raw values by key.
	Store interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Put(ctx context.Context, key string, value []byte) error
		Delete(ctx context.Context, key string) error
	}
	// Metrics records store operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
