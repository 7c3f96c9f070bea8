package memory

import (
	"context"
	"sync"

	"wallet-ledger/internal/core/ports"
)

// SnapshotStore keeps the snapshot in process memory. Nothing survives a restart.
type SnapshotStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewSnapshotStore creates an empty concurrency-safe store, useful for tests and demos.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, ports.ErrSnapshotNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *SnapshotStore) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(make([]byte, 0, len(data)), data...)
	return nil
}
