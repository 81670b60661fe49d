// Package filemanager reads and writes small state files atomically.
//
// Every write goes to a uniquely named temp file that is synced and renamed over
// the target, under an exclusive lock on a sibling ".lock" file. Reads take a
// shared lock on the same file. The locks serialise single operations only; a
// read followed by a write is not a transaction, so concurrent processes still
// see last-writer-wins.
package filemanager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrLockTimeout is returned when acquiring a file lock times out
var ErrLockTimeout = errors.New("timeout acquiring file lock")

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 10 * time.Millisecond
)

// Codec converts a value to and from its on-disk bytes
type Codec[T any] interface {
	Marshal(v T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

// Manager reads and writes values of type T through a Codec
type Manager[T any] struct {
	codec       Codec[T]
	lockTimeout time.Duration
}

// NewManager creates a new file manager with default settings
func NewManager[T any](codec Codec[T]) *Manager[T] {
	return &Manager[T]{
		codec:       codec,
		lockTimeout: defaultLockTimeout,
	}
}

// NewManagerWithTimeout creates a new file manager with custom lock timeout
func NewManagerWithTimeout[T any](codec Codec[T], timeout time.Duration) *Manager[T] {
	return &Manager[T]{
		codec:       codec,
		lockTimeout: timeout,
	}
}

// Read decodes the file at path under a shared lock. A missing file yields an
// error satisfying errors.Is(err, os.ErrNotExist).
func (m *Manager[T]) Read(ctx context.Context, path string) (T, error) {
	var zero T

	if _, err := os.Stat(path); err != nil {
		return zero, err
	}

	lock := newLock(path)
	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()

	locked, err := lock.TryRLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return zero, ErrLockTimeout
		}
		return zero, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	if !locked {
		return zero, ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	data, err := readFileWithRetry(path)
	if err != nil {
		return zero, err
	}

	v, err := m.codec.Unmarshal(data)
	if err != nil {
		return zero, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return v, nil
}

// Write replaces the file at path with the encoded value
func (m *Manager[T]) Write(ctx context.Context, path string, v T) error {
	data, err := m.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return m.writeBytes(ctx, path, data)
}

// Touch creates an empty file at path unless one already exists
func (m *Manager[T]) Touch(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return m.writeBytes(ctx, path, nil)
}

func (m *Manager[T]) writeBytes(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	lock := newLock(path)
	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrLockTimeout
		}
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	tempFile := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	_ = f.Sync()
	if err := f.Close(); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := atomicRename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
