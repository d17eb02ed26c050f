package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// EditLock is an advisory file lock held for the duration of an interactive
// edit session.
type EditLock struct {
	lock *flock.Flock
}

// AcquireEditLock takes the lock at path without blocking. ErrLocked is
// returned when another process already holds it.
func AcquireEditLock(path string) (*EditLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}
	return &EditLock{lock: lock}, nil
}

// Path returns the lock file location.
func (l *EditLock) Path() string {
	return l.lock.Path()
}

// Release unlocks the file. It is safe to call more than once.
func (l *EditLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
