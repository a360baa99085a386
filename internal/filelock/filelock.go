// Package filelock serialises writes of exported sheets. A writer holds an
// advisory lock on "<target>.lock" and replaces the target through a temp
// file and rename, so readers never see a partial export.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// RetryDelay is how often a blocked writer polls for the lock
const RetryDelay = 50 * time.Millisecond

// ErrLocked is returned when another writer holds the lock.
var ErrLocked = errors.New("file is locked by another writer")

// LockPath returns the lock file guarding target.
func LockPath(target string) string {
	return target + ".lock"
}

// WriteFile replaces target with data while holding its lock, waiting for
// the lock until ctx is done. Missing parent directories are created.
func WriteFile(ctx context.Context, target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	lock := flock.New(LockPath(target))
	ok, err := lock.TryLockContext(ctx, RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", target, err)
	}
	if !ok {
		return fmt.Errorf("failed to lock %s: %w", target, ErrLocked)
	}
	defer release(lock)

	return replace(target, data)
}

// TryWriteFile is WriteFile without waiting: it returns ErrLocked when the
// lock is already held.
func TryWriteFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	lock := flock.New(LockPath(target))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", target, err)
	}
	if !ok {
		return fmt.Errorf("failed to lock %s: %w", target, ErrLocked)
	}
	defer release(lock)

	return replace(target, data)
}

func release(lock *flock.Flock) {
	_ = lock.Unlock()
	_ = os.Remove(lock.Path())
}

// replace writes data to a hidden sibling of target and renames it into place.
func replace(target string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to move export into %s: %w", target, err)
	}
	return nil
}
