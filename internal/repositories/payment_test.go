package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewPaymentRepository(newTestStore(t, db))
	ctx := context.Background()

	purchaser, seller := identity.New(), identity.New()
	now := time.Now().UTC()
	p := &models.Payment{
		PaymentID:   identity.New(),
		PurchaserID: purchaser,
		SellerID:    seller,
		PaymentType: models.PaymentType{PaymentTypeID: identity.New(), PaymentType: "card"},
		Amount:      42.5,
		Currency:    "USD",
		Status:      models.PaymentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(ctx, p))

	bySeller, err := repo.ListBySeller(ctx, seller)
	require.NoError(t, err)
	require.Len(t, bySeller, 1)
	assert.Equal(t, p.PaymentType, bySeller[0].PaymentType)

	byPurchaser, err := repo.ListByPurchaser(ctx, purchaser)
	require.NoError(t, err)
	assert.Len(t, byPurchaser, 1)

	bySeller, err = repo.ListBySeller(ctx, purchaser)
	require.NoError(t, err)
	assert.Empty(t, bySeller)

	p.Status = models.PaymentStatusCompleted
	require.NoError(t, repo.Update(ctx, p))
	got, err := repo.GetByID(ctx, p.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, got.Status)

	require.NoError(t, repo.Delete(ctx, p.PaymentID))
	_, err = repo.GetByID(ctx, p.PaymentID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTrainingAndReviewRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	s := newTestStore(t, db)
	trainings := NewTrainingRepository(s)
	reviews := NewReviewRepository(s)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	end := now.Add(2 * time.Hour)
	tr := &models.Training{
		TrainingID: identity.New(),
		TrainerID:  identity.New(),
		Title:      "Go basics",
		StartDate:  &now,
		EndDate:    &end,
		Duration:   "2h",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, trainings.Create(ctx, tr))

	got, err := trainings.GetByID(ctx, tr.TrainingID)
	require.NoError(t, err)
	require.NotNil(t, got.EndDate)
	assert.True(t, end.Equal(*got.EndDate))

	tr.Title = "Go advanced"
	require.NoError(t, trainings.Update(ctx, tr))
	list, err := trainings.List(ctx, Page{Limit: 20})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go advanced", list[0].Title)

	rv := &models.Review{
		ReviewID:   identity.New(),
		ReviewerID: identity.New(),
		TargetType: models.ReviewTargetBusiness,
		TargetID:   identity.New(),
		Score:      4,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, reviews.Create(ctx, rv))

	rv.Score = 5
	require.NoError(t, reviews.Update(ctx, rv))
	gotReview, err := reviews.GetByID(ctx, rv.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, 5, gotReview.Score)
	assert.Equal(t, rv.TargetID, gotReview.TargetID)

	require.NoError(t, reviews.Delete(ctx, rv.ReviewID))
	err = reviews.Delete(ctx, rv.ReviewID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
