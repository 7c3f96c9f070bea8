package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const createSnapshotTable = `CREATE TABLE IF NOT EXISTS wallet_snapshots (
	storage_key TEXT PRIMARY KEY,
	payload     BYTEA NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// SnapshotStore keeps one row per storage key in wallet_snapshots.
type SnapshotStore struct {
	pool Pool
	key  string
}

// NewSnapshotStore creates a new SnapshotStore for storageKey.
func NewSnapshotStore(pool Pool, storageKey string) *SnapshotStore {
	return &SnapshotStore{pool: pool, key: storageKey}
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createSnapshotTable); err != nil {
		return fmt.Errorf("create wallet_snapshots: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	query := `SELECT payload FROM wallet_snapshots WHERE storage_key = $1`

	var payload []byte
	if err := s.pool.QueryRow(ctx, query, s.key).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get wallet snapshot: %w", err)
	}
	return payload, nil
}

// Save upserts the snapshot row.
func (s *SnapshotStore) Save(ctx context.Context, data []byte) error {
	query := `INSERT INTO wallet_snapshots (storage_key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (storage_key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

	if _, err := s.pool.Exec(ctx, query, s.key, data); err != nil {
		return fmt.Errorf("upsert wallet snapshot: %w", err)
	}
	return nil
}

// Ping checks that the snapshot table is reachable, not merely the server.
func (s *SnapshotStore) Ping(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `SELECT 1 FROM wallet_snapshots LIMIT 1`); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Name() string {
	return "postgresql"
}
