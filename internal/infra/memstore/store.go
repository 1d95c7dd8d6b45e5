// Package memstore provides an in-memory domain.Slot.
// Nothing survives the process; it backs --ephemeral runs and tests.
package memstore

import (
	"sync"

	"github.com/amanKp27/toDoList/internal/domain"
)

var _ domain.Slot = (*Store)(nil)

// Store keeps slot values in a map.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Read returns a copy of the value stored under key.
func (s *Store) Read(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

// Write stores a copy of data under key.
func (s *Store) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), data...)
	return nil
}
