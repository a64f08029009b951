package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStore keeps one file per key under a directory.
type FileStore struct {
	dir     string
	metrics Metrics
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string, metrics Metrics) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("store directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir, metrics: metrics}, nil
}

// Get returns the stored value or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, key string) (value []byte, err error) {
	started := time.Now()
	defer func() {
		s.observe("get", err, started)
	}()

	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	value, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

// Put replaces the value atomically.
func (s *FileStore) Put(ctx context.Context, key string, value []byte) (err error) {
	started := time.Now()
	defer func() {
		s.observe("put", err, started)
	}()

	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", key, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Delete removes the key. Missing keys are not an error.
func (s *FileStore) Delete(ctx context.Context, key string) (err error) {
	started := time.Now()
	defer func() {
		s.observe("delete", err, started)
	}()

	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) observe(operation string, err error, started time.Time) {
	if s.metrics == nil {
		return
	}
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.metrics.Observe(operation, err, started)
}
