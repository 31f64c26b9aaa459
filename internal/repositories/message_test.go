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

func TestMessageRepository(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewMessageRepository(newTestStore(t, db))
	ctx := context.Background()

	alice, bob, carol := identity.New(), identity.New(), identity.New()
	send := func(from, to uuid.UUID) *models.Message {
		now := time.Now().UTC()
		m := &models.Message{
			MessageID: identity.New(),
			Sender:    from,
			Receiver:  to,
			Content:   "hi",
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, repo.Create(ctx, m))
		return m
	}

	first := send(alice, bob)
	send(bob, alice)
	send(bob, carol)

	got, err := repo.GetByID(ctx, first.MessageID)
	require.NoError(t, err)
	assert.Equal(t, first.Sender, got.Sender)
	assert.Equal(t, first.Receiver, got.Receiver)

	forAlice, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, forAlice, 2)

	forCarol, err := repo.ListByUser(ctx, carol)
	require.NoError(t, err)
	assert.Len(t, forCarol, 1)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.Delete(ctx, first.MessageID))
	err = repo.Delete(ctx, first.MessageID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
