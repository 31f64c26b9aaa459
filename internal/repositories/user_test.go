package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newUser(username string) *models.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.User{
		UserID:    identity.New(),
		Username:  username,
		Email:     username + "@example.com",
		Password:  "digest",
		UserType:  "individual",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewUserRepository(newTestStore(t, db))
	ctx := context.Background()

	alice := newUser("alice")
	require.NoError(t, repo.Create(ctx, alice))

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, alice.UserID, got.UserID)
		assert.Equal(t, alice.Username, got.Username)
		assert.Equal(t, alice.Password, got.Password)
		assert.True(t, alice.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("get by username and email", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.UserID, got.UserID)

		got, err = repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.UserID, got.UserID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.True(t, errors.Is(err, ErrNotFound))

		ok, err := repo.Exists(ctx, uuid.New())
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := newUser("alice")
		err := repo.Create(ctx, dup)
		assert.True(t, errors.Is(err, ErrDuplicateKey))
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := newUser("alicia")
		dup.Email = alice.Email
		err := repo.Create(ctx, dup)
		assert.True(t, errors.Is(err, ErrDuplicateKey))

		_, err = repo.GetByUsername(ctx, "alicia")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("update", func(t *testing.T) {
		alice.UserType = "business"
		alice.UpdatedAt = alice.UpdatedAt.Add(time.Minute)
		require.NoError(t, repo.Update(ctx, alice))

		got, err := repo.GetByID(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, "business", got.UserType)
		assert.True(t, alice.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("update missing user", func(t *testing.T) {
		err := repo.Update(ctx, newUser("ghost"))
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("update password", func(t *testing.T) {
		require.NoError(t, repo.UpdatePassword(ctx, "alice@example.com", "new-digest", time.Now().UTC()))
		got, err := repo.GetByID(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, "new-digest", got.Password)

		err = repo.UpdatePassword(ctx, "nobody@example.com", "x", time.Now().UTC())
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("list pages", func(t *testing.T) {
		for _, name := range []string{"bob", "carol", "dave"} {
			require.NoError(t, repo.Create(ctx, newUser(name)))
		}

		all, err := repo.List(ctx, Page{})
		require.NoError(t, err)
		assert.Len(t, all, 4)

		page, err := repo.List(ctx, Page{Skip: 2, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, all[2].UserID, page[0].UserID)
	})

	t.Run("update to taken email", func(t *testing.T) {
		bob, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)

		bob.Email = "carol@example.com"
		err = repo.Update(ctx, bob)
		assert.True(t, errors.Is(err, ErrDuplicateKey))

		got, err := repo.GetByEmail(ctx, "carol@example.com")
		require.NoError(t, err)
		assert.Equal(t, "carol", got.Username)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, alice.UserID))
		err := repo.Delete(ctx, alice.UserID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestUserRepository_StoresBinaryIdentifiers(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewUserRepository(newTestStore(t, db))
	ctx := context.Background()

	user := newUser("erin")
	require.NoError(t, repo.Create(ctx, user))

	raw, err := db.Collection(UsersCollection).FindOne(ctx, bson.M{"username": "erin"}).Raw()
	require.NoError(t, err)

	subtype, data := raw.Lookup("user_id").Binary()
	assert.Equal(t, identity.SubtypeIdentifier, subtype)
	assert.Equal(t, user.UserID[:], data)
}

func TestUserRepository_WrongEncodingFindsNothing(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	binary := NewUserRepository(NewStore(db, identity.Codec{Encoding: identity.EncodingBinary}, time.Second))
	str := NewUserRepository(NewStore(db, identity.Codec{Encoding: identity.EncodingString}, time.Second))

	user := newUser("frank")
	require.NoError(t, binary.Create(ctx, user))

	_, err := str.GetByID(ctx, user.UserID)
	assert.True(t, errors.Is(err, ErrNotFound))

	got, err := binary.GetByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)
}

func TestUserRepository_LegacyReads(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	legacy := NewUserRepository(NewStore(db, identity.Codec{Encoding: identity.EncodingString}, time.Second))
	current := NewUserRepository(NewStore(db, identity.Codec{Encoding: identity.EncodingBinary, LegacyReads: true}, time.Second))

	old := newUser("grace")
	require.NoError(t, legacy.Create(ctx, old))
	fresh := newUser("heidi")
	require.NoError(t, current.Create(ctx, fresh))

	for _, u := range []*models.User{old, fresh} {
		got, err := current.GetByID(ctx, u.UserID)
		require.NoError(t, err)
		assert.Equal(t, u.UserID, got.UserID)
	}
}

func TestUserRepository_ConcurrentCreateSameUsername(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewUserRepository(newTestStore(t, db))
	ctx := context.Background()

	const n = 10
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, newUser("ivan"))
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrDuplicateKey):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)

	count, err := db.Collection(UsersCollection).CountDocuments(ctx, bson.M{"username": "ivan"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
