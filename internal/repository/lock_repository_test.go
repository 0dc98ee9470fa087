package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLockRepo(t *testing.T) (*LockRepository, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLockRepository(client), s
}

func TestLockAcquireIsExclusive(t *testing.T) {
	repo, s := newLockRepo(t)
	ctx := context.Background()

	token, ok, err := repo.Acquire(ctx, "alice", time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.Exists(lockKeyPrefix+"alice"))

	_, ok, err = repo.Acquire(ctx, "alice", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.Acquire(ctx, "bob", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Release(ctx, "alice", token))
	assert.False(t, s.Exists(lockKeyPrefix+"alice"))

	_, ok, err = repo.Acquire(ctx, "alice", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockReleaseIgnoresForeignToken(t *testing.T) {
	repo, s := newLockRepo(t)
	ctx := context.Background()

	_, ok, err := repo.Acquire(ctx, "alice", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.Release(ctx, "alice", "someone-else"))
	assert.True(t, s.Exists(lockKeyPrefix+"alice"))
}

func TestLockExpires(t *testing.T) {
	repo, s := newLockRepo(t)
	ctx := context.Background()

	_, ok, err := repo.Acquire(ctx, "alice", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	_, ok, err = repo.Acquire(ctx, "alice", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockWithoutClient(t *testing.T) {
	repo := NewLockRepository(nil)
	token, ok, err := repo.Acquire(context.Background(), "alice", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	assert.NoError(t, repo.Release(context.Background(), "alice", token))
	assert.NoError(t, repo.Close())
}
