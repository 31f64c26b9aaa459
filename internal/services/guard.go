package services

//go:generate mockgen -source=guard.go -destination=guard_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/metrics"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// UserExistenceChecker reports whether a user is stored.
type UserExistenceChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Locker serializes work on one natural key.
type Locker interface {
	Acquire(ctx context.Context, scope, key string) (string, error)
	Release(ctx context.Context, scope, key, token string) error
}

// Guard enforces the existence and uniqueness rules the services share.
// Unique indexes reject duplicates that race past the lookup; the optional
// locker makes such races rare.
type Guard struct {
	users  UserExistenceChecker
	locker Locker
}

// NewGuard creates a new Guard. locker may be nil.
func NewGuard(users UserExistenceChecker, locker Locker) *Guard {
	return &Guard{
		users:  users,
		locker: locker,
	}
}

// WriteIfAbsent runs check and then write while holding the lock for the natural key.
// check returns conflict when the key is taken. A duplicate-key rejection from
// write and a lock held by a concurrent request are reported as conflict too.
func (g *Guard) WriteIfAbsent(
	ctx context.Context,
	scope, key string,
	conflict error,
	check func(ctx context.Context) error,
	write func(ctx context.Context) error,
) error {
	err := g.serialize(ctx, scope, key, func(ctx context.Context) error {
		if err := check(ctx); err != nil {
			return err
		}
		return write(ctx)
	})
	err = translate(err, nil, conflict)
	if errors.Is(err, ErrConflict) {
		metrics.RecordConflict(scope)
	}
	return err
}

func (g *Guard) serialize(ctx context.Context, scope, key string, fn func(ctx context.Context) error) error {
	if g.locker == nil {
		return fn(ctx)
	}

	token, err := g.locker.Acquire(ctx, scope, key)
	switch {
	case errors.Is(err, repositories.ErrLockNotAcquired):
		logger.Log.Infow("natural key busy", "scope", scope, "key", key)
		return err
	case err != nil:
		// unique indexes still hold without the lock
		logger.Log.Warnw("lock unavailable, continuing unlocked", "scope", scope, "key", key, "error", err)
		return fn(ctx)
	}

	defer func() {
		if err := g.locker.Release(ctx, scope, key, token); err != nil {
			logger.Log.Warnw("failed to release lock", "scope", scope, "key", key, "error", err)
		}
	}()

	return fn(ctx)
}

// RequireUsers returns ErrUserNotFound unless every id refers to a stored user.
func (g *Guard) RequireUsers(ctx context.Context, ids ...uuid.UUID) error {
	for _, id := range ids {
		ok, err := g.users.Exists(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to check user exists", "user_id", id, "error", err)
			return err
		}
		if !ok {
			logger.Log.Infow("referenced user does not exist", "user_id", id)
			return ErrUserNotFound
		}
	}
	return nil
}
