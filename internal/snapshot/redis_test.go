package snapshot_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik2365/Travel-diaries/internal/snapshot"
)

func newTestRedisStore(t *testing.T) (*snapshot.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return snapshot.NewRedisStore(client), mr
}

func TestRedisStore_Load_NotFoundOnFirstRun(t *testing.T) {
	s, _ := newTestRedisStore(t)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestRedisStore_SaveThenLoad(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`[{"name":"Summer"}]`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Summer"}]`, string(data))
}

// The whole collection lives under one key with no TTL, mirroring the
// single-key localStorage layout.
func TestRedisStore_SingleKeyNoTTL(t *testing.T) {
	s, mr := newTestRedisStore(t)

	require.NoError(t, s.Save(context.Background(), []byte(`[]`)))

	require.True(t, mr.Exists("travel-diaries:trips"))
	assert.Zero(t, mr.TTL("travel-diaries:trips"))
}

func TestRedisStore_Load_FailsWhenServerDown(t *testing.T) {
	s, mr := newTestRedisStore(t)
	mr.Close()

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, snapshot.ErrNotFound)
}
