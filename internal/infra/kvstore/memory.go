package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore backs unit tests and local runs without Postgres. Values are
// stored as encoded JSON so Load/Save round-trips behave like the durable
// implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, name string, dest any) error {
	s.mu.RLock()
	raw, ok := s.data[name]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode collection %q: %w", name, err)
	}
	return nil
}

func (s *MemoryStore) Save(_ context.Context, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", name, err)
	}
	s.mu.Lock()
	s.data[name] = raw
	s.mu.Unlock()
	return nil
}
