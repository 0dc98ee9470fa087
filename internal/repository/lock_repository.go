package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "study-notes:lock:"

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockRepository stores short-lived exclusive locks in Redis. With a nil
// client every acquire succeeds, which keeps single-instance setups working
// without Redis.
type LockRepository struct {
	client *redis.Client
}

// NewLockRepository constructs a lock repository.
func NewLockRepository(client *redis.Client) *LockRepository {
	return &LockRepository{client: client}
}

// Acquire tries once to take the lock for key. The returned token must be
// passed to Release.
func (r *LockRepository) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	if r.client == nil {
		return token, true, nil
	}
	ok, err := r.client.SetNX(ctx, lockKeyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis acquire lock %s: %w", key, err)
	}
	return token, ok, nil
}

// Release drops the lock if token still owns it. A lock that expired and was
// taken by someone else is left alone.
func (r *LockRepository) Release(ctx context.Context, key, token string) error {
	if r.client == nil {
		return nil
	}
	if err := releaseScript.Run(ctx, r.client, []string{lockKeyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis release lock %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *LockRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
