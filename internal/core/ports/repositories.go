package ports

import (
	"context"
	"errors"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// ErrSnapshotNotFound is returned by a SnapshotStore when nothing has been saved under its key yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists the single wallet snapshot under a fixed key.
// Implementations store the bytes as given; they never interpret them.
type SnapshotStore interface {
	// Load returns the stored bytes, or ErrSnapshotNotFound.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored bytes.
	Save(ctx context.Context, data []byte) error
}

// HealthChecker is implemented by every network-backed store so GET /health
// can report on it.
type HealthChecker interface {
	// Ping returns nil when the backend answers.
	Ping(ctx context.Context) error
	// Name labels the backend in the health report ("redis", "postgresql").
	Name() string
}

// SnapshotSealer encrypts snapshots at rest.
type SnapshotSealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}
