package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository persists businesses.
type BusinessRepository struct {
	docs documents[models.Business]
}

// NewBusinessRepository creates a new BusinessRepository.
func NewBusinessRepository(s *Store) *BusinessRepository {
	return &BusinessRepository{docs: newDocuments[models.Business](s, BusinessesCollection)}
}

// Create inserts a new business.
func (r *BusinessRepository) Create(ctx context.Context, business *models.Business) error {
	return r.docs.insert(ctx, business)
}

// GetByID returns the business with the given identifier.
func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	return r.docs.findOne(ctx, bson.M{"business_id": r.docs.codec.Match(id)})
}

// GetByName returns the business with the given name.
func (r *BusinessRepository) GetByName(ctx context.Context, name string) (*models.Business, error) {
	return r.docs.findOne(ctx, bson.M{"name": name})
}

// List returns a page of businesses ordered by creation time.
func (r *BusinessRepository) List(ctx context.Context, page Page) ([]models.Business, error) {
	return r.docs.find(ctx, bson.M{}, page)
}

// ListByOwner returns the businesses whose owners include userID.
func (r *BusinessRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Business, error) {
	return r.docs.find(ctx, bson.M{"user_ids": r.docs.codec.Match(userID)}, Page{})
}

// Update overwrites the mutable fields of the business identified by business.BusinessID.
func (r *BusinessRepository) Update(ctx context.Context, business *models.Business) error {
	return r.docs.updateOne(ctx, bson.M{"business_id": r.docs.codec.Match(business.BusinessID)}, bson.M{"$set": bson.M{
		"user_ids":      r.docs.codec.Values(business.UserIDs),
		"name":          business.Name,
		"description":   business.Description,
		"logo":          business.Logo,
		"pictures":      business.Pictures,
		"founder":       business.Founder,
		"industry":      business.Industry,
		"phone":         business.Phone,
		"address":       business.Address,
		"city":          business.City,
		"region":        business.Region,
		"country":       business.Country,
		"website":       business.Website,
		"contact_email": business.ContactEmail,
		"updated_at":    business.UpdatedAt,
	}})
}

// RemoveOwner pulls userID from the owners of every business and returns how many changed.
func (r *BusinessRepository) RemoveOwner(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	match := r.docs.codec.Match(userID)
	return r.docs.updateMany(ctx,
		bson.M{"user_ids": match},
		bson.M{
			"$pull": bson.M{"user_ids": match},
			"$set":  bson.M{"updated_at": at},
		},
	)
}

// Delete removes the business with the given identifier.
func (r *BusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.deleteOne(ctx, bson.M{"business_id": r.docs.codec.Match(id)})
}
