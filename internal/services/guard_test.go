package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sbilibin2017/bizlink/internal/repositories"
	"github.com/sbilibin2017/bizlink/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGuard_WriteIfAbsent(t *testing.T) {
	conflict := services.ErrUserAlreadyExists
	storeErr := errors.New("db error")

	tests := []struct {
		name       string
		withLocker bool
		acquireErr error
		checkErr   error
		writeErr   error
		wantWrite  bool
		wantErr    error
	}{
		{name: "free key without locker", wantWrite: true},
		{name: "free key with locker", withLocker: true, wantWrite: true},
		{name: "taken key", checkErr: conflict, wantErr: conflict},
		{name: "lookup failure", checkErr: storeErr, wantErr: storeErr},
		{name: "duplicate key on write", writeErr: pkgerrors.Wrap(repositories.ErrDuplicateKey, "users"), wantWrite: true, wantErr: conflict},
		{name: "lock held elsewhere", withLocker: true, acquireErr: pkgerrors.Wrap(repositories.ErrLockNotAcquired, "lock:users:alice"), wantErr: conflict},
		{name: "lock backend down", withLocker: true, acquireErr: errors.New("redis down"), wantWrite: true},
		{name: "write failure", writeErr: storeErr, wantWrite: true, wantErr: storeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var guard *services.Guard
			if tt.withLocker {
				locker := services.NewMockLocker(ctrl)
				locker.EXPECT().Acquire(gomock.Any(), repositories.UsersCollection, "alice").Return("token", tt.acquireErr)
				if tt.acquireErr == nil {
					locker.EXPECT().Release(gomock.Any(), repositories.UsersCollection, "alice", "token").Return(nil)
				}
				guard = services.NewGuard(services.NewMockUserExistenceChecker(ctrl), locker)
			} else {
				guard = services.NewGuard(services.NewMockUserExistenceChecker(ctrl), nil)
			}

			wrote := false
			err := guard.WriteIfAbsent(context.Background(), repositories.UsersCollection, "alice", conflict,
				func(ctx context.Context) error { return tt.checkErr },
				func(ctx context.Context) error {
					wrote = true
					return tt.writeErr
				},
			)

			assert.Equal(t, tt.wantWrite, wrote)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuard_RequireUsers(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("all exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := services.NewMockUserExistenceChecker(ctrl)
		users.EXPECT().Exists(gomock.Any(), a).Return(true, nil)
		users.EXPECT().Exists(gomock.Any(), b).Return(true, nil)

		err := services.NewGuard(users, nil).RequireUsers(context.Background(), a, b)
		assert.NoError(t, err)
	})

	t.Run("second missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := services.NewMockUserExistenceChecker(ctrl)
		users.EXPECT().Exists(gomock.Any(), a).Return(true, nil)
		users.EXPECT().Exists(gomock.Any(), b).Return(false, nil)

		err := services.NewGuard(users, nil).RequireUsers(context.Background(), a, b)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := services.NewMockUserExistenceChecker(ctrl)
		users.EXPECT().Exists(gomock.Any(), a).Return(false, errors.New("db error"))

		err := services.NewGuard(users, nil).RequireUsers(context.Background(), a)
		assert.EqualError(t, err, "db error")
	})
}

func TestEntityError(t *testing.T) {
	assert.Equal(t, "User does not exist", services.ErrUserNotFound.Error())
	assert.Equal(t, "Business already exists", services.ErrBusinessAlreadyExists.Error())

	var entityErr *services.EntityError
	assert.True(t, errors.As(services.ErrReviewNotFound, &entityErr))
	assert.Equal(t, "Review", entityErr.Entity)
	assert.False(t, errors.Is(services.ErrReviewNotFound, services.ErrConflict))
}
