package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLockRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewLockRepository(rdb, time.Second)

	t.Run("acquire and release", func(t *testing.T) {
		token, err := repo.Acquire(ctx, UsersCollection, "alice")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		_, err = repo.Acquire(ctx, UsersCollection, "alice")
		assert.True(t, errors.Is(err, ErrLockNotAcquired))

		// other keys and scopes are independent
		other, err := repo.Acquire(ctx, ProfilesCollection, "alice")
		require.NoError(t, err)
		assert.NoError(t, repo.Release(ctx, ProfilesCollection, "alice", other))

		require.NoError(t, repo.Release(ctx, UsersCollection, "alice", token))

		token, err = repo.Acquire(ctx, UsersCollection, "alice")
		require.NoError(t, err)
		assert.NoError(t, repo.Release(ctx, UsersCollection, "alice", token))
	})

	t.Run("foreign token does not release", func(t *testing.T) {
		token, err := repo.Acquire(ctx, UsersCollection, "bob")
		require.NoError(t, err)

		require.NoError(t, repo.Release(ctx, UsersCollection, "bob", "not-the-token"))
		_, err = repo.Acquire(ctx, UsersCollection, "bob")
		assert.True(t, errors.Is(err, ErrLockNotAcquired))

		require.NoError(t, repo.Release(ctx, UsersCollection, "bob", token))
	})

	t.Run("expires", func(t *testing.T) {
		_, err := repo.Acquire(ctx, UsersCollection, "carol")
		require.NoError(t, err)

		time.Sleep(1500 * time.Millisecond)

		token, err := repo.Acquire(ctx, UsersCollection, "carol")
		require.NoError(t, err)
		assert.NoError(t, repo.Release(ctx, UsersCollection, "carol", token))
	})

	t.Run("single holder under contention", func(t *testing.T) {
		const n = 20
		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			holder int
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.Acquire(ctx, BusinessesCollection, "Acme"); err == nil {
					mu.Lock()
					holder++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, holder)
	})

	t.Run("default ttl", func(t *testing.T) {
		assert.Equal(t, DefaultLockTTL, NewLockRepository(rdb, 0).ttl)
	})
}
