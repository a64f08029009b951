// Package postgres is a PostgreSQL backed kvstore.Store.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/kvstore"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// DB is the subset of pgxpool.Pool used by Store.
	DB interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Store keeps values in the kv_store table.
type Store struct {
	db      DB
	metrics Metrics
}

// NewPool opens a connection pool and verifies it with a ping.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// NewStore wraps db.
func NewStore(db DB, metrics Metrics) *Store {
	return &Store{db: db, metrics: metrics}
}

const (
	getQuery    = `SELECT value FROM kv_store WHERE key = $1`
	putQuery    = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteQuery = `DELETE FROM kv_store WHERE key = $1`
)

// Get returns the stored value or kvstore.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (value []byte, err error) {
	started := time.Now()
	defer func() {
		s.observe("get", err, started)
	}()

	if err = s.db.QueryRow(ctx, getQuery, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = kvstore.ErrNotFound
			return nil, err
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

// Put upserts the value.
func (s *Store) Put(ctx context.Context, key string, value []byte) (err error) {
	started := time.Now()
	defer func() {
		s.observe("put", err, started)
	}()

	if _, err = s.db.Exec(ctx, putQuery, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (s *Store) Delete(ctx context.Context, key string) (err error) {
	started := time.Now()
	defer func() {
		s.observe("delete", err, started)
	}()

	if _, err = s.db.Exec(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) observe(operation string, err error, started time.Time) {
	if s.metrics == nil {
		return
	}
	if errors.Is(err, kvstore.ErrNotFound) {
		err = nil
	}
	s.metrics.Observe(operation, err, started)
}
