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

type reviewMocks struct {
	reviews    *services.MockReviewStore
	businesses *services.MockBusinessFinder
	users      *services.MockUserExistenceChecker
}

func newReviewService(t *testing.T) (*services.ReviewService, reviewMocks) {
	ctrl := gomock.NewController(t)
	m := reviewMocks{
		reviews:    services.NewMockReviewStore(ctrl),
		businesses: services.NewMockBusinessFinder(ctrl),
		users:      services.NewMockUserExistenceChecker(ctrl),
	}
	return services.NewReviewService(m.reviews, m.businesses, services.NewGuard(m.users, nil)), m
}

func TestReviewService_Add(t *testing.T) {
	ctx := context.Background()
	reviewer, target := uuid.New(), uuid.New()

	t.Run("business review", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.users.EXPECT().Exists(ctx, reviewer).Return(true, nil)
		m.businesses.EXPECT().GetByID(ctx, target).Return(&models.Business{BusinessID: target}, nil)
		m.reviews.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		review, err := svc.Add(ctx, services.AddReviewInput{
			ReviewerID: reviewer, TargetType: models.ReviewTargetBusiness, TargetID: target, Score: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, review.Score)
	})

	t.Run("product review skips business lookup", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.users.EXPECT().Exists(ctx, reviewer).Return(true, nil)
		m.reviews.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := svc.Add(ctx, services.AddReviewInput{
			ReviewerID: reviewer, TargetType: models.ReviewTargetProduct, TargetID: target, Score: 1,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown business", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.users.EXPECT().Exists(ctx, reviewer).Return(true, nil)
		m.businesses.EXPECT().GetByID(ctx, target).Return(nil, repositories.ErrNotFound)

		_, err := svc.Add(ctx, services.AddReviewInput{
			ReviewerID: reviewer, TargetType: models.ReviewTargetBusiness, TargetID: target, Score: 3,
		})
		assert.ErrorIs(t, err, services.ErrBusinessNotFound)
	})

	t.Run("score out of range", func(t *testing.T) {
		svc, _ := newReviewService(t)

		for _, score := range []int{0, 6} {
			_, err := svc.Add(ctx, services.AddReviewInput{
				ReviewerID: reviewer, TargetType: models.ReviewTargetProduct, TargetID: target, Score: score,
			})
			assert.ErrorIs(t, err, services.ErrValidation)
		}
	})

	t.Run("unknown target type", func(t *testing.T) {
		svc, _ := newReviewService(t)

		_, err := svc.Add(ctx, services.AddReviewInput{
			ReviewerID: reviewer, TargetType: "service", TargetID: target, Score: 3,
		})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestReviewService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	comment := "better now"

	svc, m := newReviewService(t)
	m.reviews.EXPECT().GetByID(ctx, id).Return(&models.Review{ReviewID: id, Score: 2, TargetType: models.ReviewTargetProduct}, nil)
	m.reviews.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	review, err := svc.Update(ctx, services.UpdateReviewInput{ReviewID: id, Score: 4, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Score)
	assert.Equal(t, models.ReviewTargetProduct, review.TargetType)
	assert.Equal(t, &comment, review.Comment)
}
