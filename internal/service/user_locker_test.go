package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

func TestUserLockerNilRunsDirectly(t *testing.T) {
	var l *UserLocker
	called := false
	require.NoError(t, l.WithLock(context.Background(), "alice", func(ctx context.Context) error {
		called = true
		return nil
	}))
	assert.True(t, called)
}

func TestUserLockerReleasesOnError(t *testing.T) {
	locks := newMockLockRepo()
	l := NewUserLocker(locks, time.Second, time.Second, nil, nil)
	boom := errors.New("boom")

	err := l.WithLock(context.Background(), "alice", func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, locks.held)
	assert.Equal(t, 1, locks.releases)
}

func TestUserLockerBusy(t *testing.T) {
	locks := newMockLockRepo()
	locks.held["alice"] = "other"
	metrics := NewMetricsService()
	l := NewUserLocker(locks, time.Second, 50*time.Millisecond, metrics, nil)

	called := false
	err := l.WithLock(context.Background(), "alice", func(ctx context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, appErrors.ErrLocked)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)
	assert.False(t, called)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.lockBusy))
}

func TestUserLockerWaitsForRelease(t *testing.T) {
	locks := newMockLockRepo()
	locks.held["alice"] = "other"
	l := NewUserLocker(locks, time.Second, time.Second, nil, nil)

	go func() {
		time.Sleep(60 * time.Millisecond)
		_ = locks.Release(context.Background(), "alice", "other")
	}()

	require.NoError(t, l.WithLock(context.Background(), "alice", func(ctx context.Context) error { return nil }))
}

func TestUserLockerAcquireFailure(t *testing.T) {
	locks := newMockLockRepo()
	locks.err = errStoreDown
	l := NewUserLocker(locks, time.Second, time.Second, nil, nil)

	err := l.WithLock(context.Background(), "alice", func(ctx context.Context) error { return nil })
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}
