package redis_test

import (
	"context"
	"testing"

	"wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSnapshotStore(t *testing.T) (*redis.SnapshotStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewSnapshotStore(client, "demoWallet_v1"), mr
}

func TestSnapshotStore_Key(t *testing.T) {
	store, _ := setupSnapshotStore(t)
	assert.Equal(t, "wallet:snapshot:demoWallet_v1", store.Key())
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store, _ := setupSnapshotStore(t)
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrSnapshotNotFound)
}

func TestSnapshotStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store, mr := setupSnapshotStore(t)

	require.NoError(t, store.Save(ctx, []byte(`{"welcomeBonusGiven":true}`)))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"welcomeBonusGiven":true}`, string(data))

	raw, err := mr.Get("wallet:snapshot:demoWallet_v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"welcomeBonusGiven":true}`, raw)
	assert.Zero(t, mr.TTL("wallet:snapshot:demoWallet_v1"), "snapshot never expires")
}

func TestSnapshotStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store, _ := setupSnapshotStore(t)

	require.NoError(t, store.Save(ctx, []byte("first")))
	require.NoError(t, store.Save(ctx, []byte("second")))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSnapshotStore_RedisDown(t *testing.T) {
	ctx := context.Background()
	store, mr := setupSnapshotStore(t)
	mr.Close()

	_, err := store.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrSnapshotNotFound)

	assert.Error(t, store.Save(ctx, []byte("{}")))
}
