package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
	"github.com/sbilibin2017/bizlink/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusinessService(t *testing.T) (*services.BusinessService, *services.MockBusinessStore, *services.MockUserExistenceChecker) {
	ctrl := gomock.NewController(t)
	businesses := services.NewMockBusinessStore(ctrl)
	users := services.NewMockUserExistenceChecker(ctrl)
	return services.NewBusinessService(businesses, services.NewGuard(users, nil)), businesses, users
}

func businessInput(owners ...uuid.UUID) services.BusinessInput {
	return services.BusinessInput{
		UserIDs:  owners,
		Name:     "Acme",
		Founder:  "Alice",
		Industry: "Retail",
		Phone:    "+1-555-0100",
		Country:  "US",
	}
}

func TestBusinessService_Register(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("registers with existing owners", func(t *testing.T) {
		svc, businesses, users := newBusinessService(t)
		users.EXPECT().Exists(ctx, owner).Return(true, nil)
		businesses.EXPECT().GetByName(gomock.Any(), "Acme").Return(nil, repositories.ErrNotFound)
		businesses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		business, err := svc.Register(ctx, businessInput(owner))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{owner}, business.UserIDs)
		assert.True(t, business.OwnedBy(owner))
		assert.NotEqual(t, uuid.Nil, business.BusinessID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc, _, users := newBusinessService(t)
		second := uuid.New()
		users.EXPECT().Exists(ctx, owner).Return(true, nil)
		users.EXPECT().Exists(ctx, second).Return(false, nil)

		_, err := svc.Register(ctx, businessInput(owner, second))
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, businesses, users := newBusinessService(t)
		users.EXPECT().Exists(ctx, owner).Return(true, nil)
		businesses.EXPECT().GetByName(gomock.Any(), "Acme").Return(&models.Business{}, nil)

		_, err := svc.Register(ctx, businessInput(owner))
		assert.ErrorIs(t, err, services.ErrBusinessAlreadyExists)
	})

	t.Run("no owners", func(t *testing.T) {
		svc, _, _ := newBusinessService(t)

		_, err := svc.Register(ctx, businessInput())
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestBusinessService_Update(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()

	t.Run("rename to free name", func(t *testing.T) {
		svc, businesses, users := newBusinessService(t)
		businesses.EXPECT().GetByID(ctx, id).Return(&models.Business{BusinessID: id, Name: "Old"}, nil)
		users.EXPECT().Exists(ctx, owner).Return(true, nil)
		businesses.EXPECT().GetByName(gomock.Any(), "Acme").Return(nil, repositories.ErrNotFound)
		businesses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		in := businessInput(owner)
		in.BusinessID = id
		business, err := svc.Update(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "Acme", business.Name)
	})

	t.Run("missing business", func(t *testing.T) {
		svc, businesses, _ := newBusinessService(t)
		businesses.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)

		in := businessInput(owner)
		in.BusinessID = id
		_, err := svc.Update(ctx, in)
		assert.ErrorIs(t, err, services.ErrBusinessNotFound)
	})
}

func TestBusinessService_ListByOwner(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	svc, businesses, users := newBusinessService(t)
	users.EXPECT().Exists(ctx, owner).Return(true, nil)
	businesses.EXPECT().ListByOwner(ctx, owner).Return([]models.Business{{Name: "Acme"}}, nil)

	list, err := svc.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	users.EXPECT().Exists(ctx, owner).Return(false, nil)
	_, err = svc.ListByOwner(ctx, owner)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestBusinessService_Delete(t *testing.T) {
	svc, businesses, _ := newBusinessService(t)
	id := uuid.New()
	businesses.EXPECT().Delete(gomock.Any(), id).Return(repositories.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), services.ErrBusinessNotFound)
}
