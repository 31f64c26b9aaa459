package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ReviewRepository persists reviews.
type ReviewRepository struct {
	docs documents[models.Review]
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(s *Store) *ReviewRepository {
	return &ReviewRepository{docs: newDocuments[models.Review](s, ReviewsCollection)}
}

// Create inserts a new review.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.docs.insert(ctx, review)
}

// GetByID returns the review with the given identifier.
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return r.docs.findOne(ctx, bson.M{"review_id": r.docs.codec.Match(id)})
}

// List returns a page of reviews ordered by creation time.
func (r *ReviewRepository) List(ctx context.Context, page Page) ([]models.Review, error) {
	return r.docs.find(ctx, bson.M{}, page)
}

// Update overwrites the mutable fields of the review identified by review.ReviewID.
// The reviewer and target are fixed at creation.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.docs.updateOne(ctx, bson.M{"review_id": r.docs.codec.Match(review.ReviewID)}, bson.M{"$set": bson.M{
		"score":       review.Score,
		"comment":     review.Comment,
		"review_link": review.ReviewLink,
		"updated_at":  review.UpdatedAt,
	}})
}

// Delete removes the review with the given identifier.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.deleteOne(ctx, bson.M{"review_id": r.docs.codec.Match(id)})
}
