// Package filelock provides the advisory lock that keeps two merge runs from
// writing the same output document at the same time.
//
// The lock file is left on disk after Unlock. Removing it would let a waiting
// process lock the unlinked inode while a third one creates and locks a fresh
// file at the same path, so both would believe they own the output.
package filelock

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process already holds the lock.
var ErrLocked = errors.New("lock is held by another process")

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file is created on the first lock attempt.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock. The lock file is left in place.
func (fl *FileLock) Unlock() error {
	err := fl.flock.Unlock()
	if err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// LockPath returns the lock file used to guard target.
// Example: "full_project_code.txt" is guarded by "full_project_code.txt.lock"
func LockPath(target string) string {
	return target + ".lock"
}

// AcquireFor takes the lock guarding target without blocking.
// Returns an error wrapping ErrLocked when another run holds it.
func AcquireFor(target string) (*FileLock, error) {
	lock := NewFileLock(LockPath(target))

	acquired, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("%s: %w", lock.path, ErrLocked)
	}

	return lock, nil
}
