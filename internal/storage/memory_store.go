package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"comanda_manager/internal/apperrors"
)

// MemoryStore holds collections as marshalled JSON in memory. Used by tests
// and as a throwaway backend; round-tripping through JSON keeps its behavior
// identical to the durable stores.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Seed injects raw bytes for a collection, bypassing marshalling. Tests use
// it to simulate corrupt persisted state.
func (s *MemoryStore) Seed(collection string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = raw
}

func (s *MemoryStore) Load(collection string, dest interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[collection]
	s.mu.RUnlock()
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return apperrors.NewCorruptState(collection, err)
	}
	return nil
}

func (s *MemoryStore) Save(collection string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection, err)
	}
	s.mu.Lock()
	s.data[collection] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) SaveAll(collections map[string]interface{}) error {
	for name, value := range collections {
		if err := s.Save(name, value); err != nil {
			return err
		}
	}
	return nil
}
