package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/bizlink/internal/logger"
)

// DefaultLockTTL bounds how long a crashed holder can block a natural key.
const DefaultLockTTL = 5 * time.Second

// releaseScript deletes the lock only if it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockRepository serializes create-if-absent sequences per natural key using Redis.
type LockRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLockRepository creates a new lock repository. A non-positive ttl uses DefaultLockTTL.
func NewLockRepository(client *redis.Client, ttl time.Duration) *LockRepository {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &LockRepository{
		client: client,
		ttl:    ttl,
	}
}

func lockKey(scope, key string) string {
	return fmt.Sprintf("lock:%s:%s", scope, key)
}

// Acquire takes the lock for key within scope and returns the token needed to release it.
// It returns ErrLockNotAcquired when the lock is held by someone else.
func (r *LockRepository) Acquire(ctx context.Context, scope, key string) (string, error) {
	k := lockKey(scope, key)
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, k, token, r.ttl).Result()

	logger.Log.Infow(
		"key", k,
		"ttl", r.ttl,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return "", errors.Wrapf(err, "acquire %s", k)
	}
	if !ok {
		return "", errors.Wrap(ErrLockNotAcquired, k)
	}
	return token, nil
}

// Release frees the lock if token still owns it. Releasing an expired or
// foreign lock is not an error.
func (r *LockRepository) Release(ctx context.Context, scope, key, token string) error {
	k := lockKey(scope, key)

	n, err := releaseScript.Run(ctx, r.client, []string{k}, token).Int()

	logger.Log.Infow(
		"key", k,
		"result", n,
		"error", err,
	)

	if err != nil {
		return errors.Wrapf(err, "release %s", k)
	}
	return nil
}
