package lock

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrLocked is returned by TryLock when another process holds the lock.
var ErrLocked = errors.New("lock is held by another process")

// FileLock provides file-based locking so two batch runs never write the
// same output directory at once.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a lock backed by the file at path
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// Path returns the lock file path
func (l *FileLock) Path() string {
	return l.path
}

// TryLock attempts to acquire the lock without blocking.
func (l *FileLock) TryLock() error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		file.Close()
		return fmt.Errorf("%w (lock file: %s)", ErrLocked, l.path)
	}

	l.file = file

	// Write PID to lock file
	if err := file.Truncate(0); err == nil {
		fmt.Fprintf(file, "%d\n", os.Getpid())
	}

	return nil
}

// Unlock releases the lock and removes the lock file
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("failed to unlock: %w", err)
	}

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}

	os.Remove(l.path)
	l.file = nil

	return nil
}
