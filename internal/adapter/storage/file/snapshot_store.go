package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"wallet-ledger/internal/core/ports"

	"github.com/spf13/afero"
)

const snapshotFileMode = 0o600

// SnapshotStore keeps the snapshot in <dir>/<key>.json. Writes go through a
// temp file and a rename so a crash never leaves a half-written snapshot.
type SnapshotStore struct {
	fs   afero.Fs
	dir  string
	path string
	mu   sync.Mutex
}

// NewSnapshotStore creates dir if needed and returns a store for key.
func NewSnapshotStore(fsys afero.Fs, dir, key string) (*SnapshotStore, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return nil, fmt.Errorf("invalid snapshot key %q", key)
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	return &SnapshotStore{
		fs:   fsys,
		dir:  dir,
		path: filepath.Join(dir, key+".json"),
	}, nil
}

// Path returns the snapshot file location.
func (s *SnapshotStore) Path() string {
	return s.path
}

func (s *SnapshotStore) Load(_ context.Context) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return data, nil
}

func (s *SnapshotStore) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, snapshotFileMode); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Ping implements ports.HealthChecker by checking the snapshot dir is still there.
func (s *SnapshotStore) Ping(_ context.Context) error {
	info, err := s.fs.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *SnapshotStore) Name() string {
	return "filesystem"
}
