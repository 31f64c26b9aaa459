package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusiness(name string, owners ...uuid.UUID) *models.Business {
	now := time.Now().UTC()
	return &models.Business{
		BusinessID:  identity.New(),
		UserIDs:     owners,
		Name:        name,
		Description: "desc",
		Founder:     "founder",
		Industry:    "software",
		Phone:       "+100000000",
		Country:     "US",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBusinessRepository(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewBusinessRepository(newTestStore(t, db))
	ctx := context.Background()

	alice, bob := identity.New(), identity.New()

	acme := newBusiness("Acme", alice, bob)
	globex := newBusiness("Globex", bob)
	require.NoError(t, repo.Create(ctx, acme))
	require.NoError(t, repo.Create(ctx, globex))

	t.Run("duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, newBusiness("Acme"))
		assert.True(t, errors.Is(err, ErrDuplicateKey))
	})

	t.Run("get by id and name", func(t *testing.T) {
		got, err := repo.GetByID(ctx, acme.BusinessID)
		require.NoError(t, err)
		assert.Equal(t, acme.UserIDs, got.UserIDs)

		got, err = repo.GetByName(ctx, "Globex")
		require.NoError(t, err)
		assert.Equal(t, globex.BusinessID, got.BusinessID)
	})

	t.Run("list by owner", func(t *testing.T) {
		owned, err := repo.ListByOwner(ctx, bob)
		require.NoError(t, err)
		assert.Len(t, owned, 2)

		owned, err = repo.ListByOwner(ctx, alice)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, "Acme", owned[0].Name)

		owned, err = repo.ListByOwner(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, owned)
	})

	t.Run("paginate", func(t *testing.T) {
		page, err := repo.List(ctx, Page{Skip: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "Globex", page[0].Name)
	})

	t.Run("remove owner", func(t *testing.T) {
		changed, err := repo.RemoveOwner(ctx, bob, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, int64(2), changed)

		got, err := repo.GetByID(ctx, acme.BusinessID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{alice}, got.UserIDs)

		got, err = repo.GetByID(ctx, globex.BusinessID)
		require.NoError(t, err)
		assert.Empty(t, got.UserIDs)
	})

	t.Run("update and delete", func(t *testing.T) {
		acme.Industry = "manufacturing"
		require.NoError(t, repo.Update(ctx, acme))

		got, err := repo.GetByID(ctx, acme.BusinessID)
		require.NoError(t, err)
		assert.Equal(t, "manufacturing", got.Industry)

		require.NoError(t, repo.Delete(ctx, acme.BusinessID))
		_, err = repo.GetByID(ctx, acme.BusinessID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
