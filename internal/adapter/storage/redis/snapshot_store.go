package redis

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "wallet:snapshot:"

// SnapshotStore keeps the snapshot as a plain string value. The key never
// expires; concurrent writers from several processes are last-writer-wins.
type SnapshotStore struct {
	client goredis.Cmdable
	key    string
}

// NewSnapshotStore creates a store for the given storage key.
func NewSnapshotStore(client goredis.Cmdable, storageKey string) *SnapshotStore {
	return &SnapshotStore{
		client: client,
		key:    snapshotKeyPrefix + storageKey,
	}
}

// Key returns the Redis key the snapshot lives under.
func (s *SnapshotStore) Key() string {
	return s.key
}

func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("redis snapshot get: %w", err)
	}
	return data, nil
}

func (s *SnapshotStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}

// Ping reports whether Redis answers.
func (s *SnapshotStore) Ping(ctx context.Context) error {
	return ping(ctx, s.client)
}

func (s *SnapshotStore) Name() string {
	return "redis"
}
