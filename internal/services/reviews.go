package services

//go:generate mockgen -source=reviews.go -destination=reviews_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// ReviewStore persists reviews.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	List(ctx context.Context, page repositories.Page) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusinessFinder looks businesses up by identifier.
type BusinessFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
}

// AddReviewInput is the data needed to add a review.
type AddReviewInput struct {
	ReviewerID uuid.UUID `json:"reviewer_id" validate:"required"`
	TargetType string    `json:"target_type" validate:"required,oneof=business product"`
	TargetID   uuid.UUID `json:"target_id" validate:"required"`
	Score      int       `json:"score" validate:"min=1,max=5"`
	Comment    *string   `json:"comment" validate:"omitempty,max=4096"`
	ReviewLink *string   `json:"review_link" validate:"omitempty,url"`
}

// UpdateReviewInput replaces the rating of a review.
type UpdateReviewInput struct {
	ReviewID   uuid.UUID `json:"review_id" validate:"required"`
	Score      int       `json:"score" validate:"min=1,max=5"`
	Comment    *string   `json:"comment" validate:"omitempty,max=4096"`
	ReviewLink *string   `json:"review_link" validate:"omitempty,url"`
}

// ReviewService manages reviews of businesses and products.
type ReviewService struct {
	reviews    ReviewStore
	businesses BusinessFinder
	guard      *Guard
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews ReviewStore, businesses BusinessFinder, guard *Guard) *ReviewService {
	return &ReviewService{
		reviews:    reviews,
		businesses: businesses,
		guard:      guard,
	}
}

// Add stores a review by an existing user. Business targets must exist;
// products live outside this system and are taken on trust.
func (s *ReviewService) Add(ctx context.Context, in AddReviewInput) (*models.Review, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.guard.RequireUsers(ctx, in.ReviewerID); err != nil {
		return nil, err
	}
	if in.TargetType == models.ReviewTargetBusiness {
		if _, err := s.businesses.GetByID(ctx, in.TargetID); err != nil {
			return nil, translate(err, ErrBusinessNotFound, nil)
		}
	}

	now := time.Now().UTC()
	review := &models.Review{
		ReviewID:   identity.New(),
		ReviewerID: in.ReviewerID,
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		Score:      in.Score,
		Comment:    in.Comment,
		ReviewLink: in.ReviewLink,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		logger.Log.Errorw("failed to add review", "reviewer_id", in.ReviewerID, "err", err)
		return nil, translate(err, nil, ErrReviewAlreadyExists)
	}
	return review, nil
}

// Get returns the review with the given identifier.
func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrReviewNotFound, nil)
	}
	return review, nil
}

// List returns one page of reviews.
func (s *ReviewService) List(ctx context.Context, page, limit int) ([]models.Review, error) {
	reviews, err := s.reviews.List(ctx, Paginate(page, limit))
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "err", err)
		return nil, err
	}
	return reviews, nil
}

// Update replaces the score, comment and link of a review.
func (s *ReviewService) Update(ctx context.Context, in UpdateReviewInput) (*models.Review, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	review, err := s.reviews.GetByID(ctx, in.ReviewID)
	if err != nil {
		return nil, translate(err, ErrReviewNotFound, nil)
	}

	review.Score = in.Score
	review.Comment = in.Comment
	review.ReviewLink = in.ReviewLink
	review.UpdatedAt = time.Now().UTC()

	if err := s.reviews.Update(ctx, review); err != nil {
		logger.Log.Errorw("failed to update review", "review_id", in.ReviewID, "err", err)
		return nil, translate(err, ErrReviewNotFound, nil)
	}
	return review, nil
}

// Delete removes the review with the given identifier.
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete review", "review_id", id, "err", err)
		return translate(err, ErrReviewNotFound, nil)
	}
	return nil
}
