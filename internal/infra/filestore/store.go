// Package filestore provides a file-based implementation of domain.Slot.
// Each key lives in its own JSON file under a directory.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/amanKp27/toDoList/internal/domain"
)

// Ensure Store implements domain.Slot.
var _ domain.Slot = (*Store)(nil)

// Store implements domain.Slot on the local filesystem.
type Store struct {
	dir string
}

// New creates a new Store rooted at dir.
// The directory does not need to exist; it is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return domain.SlotFilePath(s.dir, key)
}

// Read returns the contents stored under key.
func (s *Store) Read(key string) ([]byte, error) {
	path := s.Path(key)

	lock, err := s.acquireLock(path, syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return content, nil
}

// Write replaces the contents stored under key.
func (s *Store) Write(key string, data []byte) error {
	path := s.Path(key)

	lock, err := s.acquireLock(path, syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	// Write to temp file first, then rename for atomicity
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *Store) acquireLock(path string, lockType int) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create slot directory: %w", err)
	}

	lock, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
