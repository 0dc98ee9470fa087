package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

const lockPollInterval = 25 * time.Millisecond

type lockObserver interface {
	ObserveLockWait(acquired bool, duration time.Duration)
}

// UserLocker serialises read-modify-write cycles on one user aggregate.
// A nil *UserLocker runs the function without locking.
type UserLocker struct {
	repo     lockRepository
	ttl      time.Duration
	wait     time.Duration
	observer lockObserver
	logger   *zap.Logger
}

// NewUserLocker builds a locker. ttl bounds how long a crashed holder blocks
// others; wait bounds how long a request polls for the lock.
func NewUserLocker(repo lockRepository, ttl, wait time.Duration, observer lockObserver, logger *zap.Logger) *UserLocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &UserLocker{repo: repo, ttl: ttl, wait: wait, observer: observer, logger: logger}
}

// WithLock runs fn while holding the lock for username.
func (l *UserLocker) WithLock(ctx context.Context, username string, fn func(ctx context.Context) error) error {
	if l == nil || l.repo == nil {
		return fn(ctx)
	}

	start := time.Now()
	deadline := start.Add(l.wait)
	var token string
	for {
		t, ok, err := l.repo.Acquire(ctx, username, l.ttl)
		if err != nil {
			return appErrors.Internal(err, "failed to lock user")
		}
		if ok {
			token = t
			break
		}
		if !time.Now().Before(deadline) {
			l.observe(false, time.Since(start))
			l.logger.Warn("user lock busy", zap.String("username", username), zap.Duration("waited", time.Since(start)))
			return appErrors.ErrLocked
		}
		select {
		case <-ctx.Done():
			l.observe(false, time.Since(start))
			return appErrors.Internal(ctx.Err(), "failed to lock user")
		case <-time.After(lockPollInterval):
		}
	}
	l.observe(true, time.Since(start))

	defer func() {
		if err := l.repo.Release(context.WithoutCancel(ctx), username, token); err != nil {
			l.logger.Error("release user lock", zap.String("username", username), zap.Error(err))
		}
	}()
	return fn(ctx)
}

func (l *UserLocker) observe(acquired bool, d time.Duration) {
	if l.observer != nil {
		l.observer.ObserveLockWait(acquired, d)
	}
}
