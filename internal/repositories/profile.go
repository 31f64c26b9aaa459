package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository persists profiles.
type ProfileRepository struct {
	docs documents[models.Profile]
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(s *Store) *ProfileRepository {
	return &ProfileRepository{docs: newDocuments[models.Profile](s, ProfilesCollection)}
}

// Create inserts a new profile.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.docs.insert(ctx, profile)
}

// GetByID returns the profile with the given identifier.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return r.docs.findOne(ctx, bson.M{"profile_id": r.docs.codec.Match(id)})
}

// GetByUserID returns the profile belonging to the given user.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return r.docs.findOne(ctx, bson.M{"user_id": r.docs.codec.Match(userID)})
}

// GetByUsername returns the profile with the given username.
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return r.docs.findOne(ctx, bson.M{"username": username})
}

// GetByEmail returns the profile with the given email.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return r.docs.findOne(ctx, bson.M{"email": email})
}

// List returns every profile.
func (r *ProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	return r.docs.find(ctx, bson.M{}, Page{})
}

// Update overwrites the mutable fields of the profile identified by profile.ProfileID.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.docs.updateOne(ctx, bson.M{"profile_id": r.docs.codec.Match(profile.ProfileID)}, bson.M{"$set": bson.M{
		"username":     profile.Username,
		"email":        profile.Email,
		"bio":          profile.Bio,
		"profile_type": profile.ProfileType,
		"business":     profile.Business,
		"interests":    profile.Interests,
		"updated_at":   profile.UpdatedAt,
	}})
}

// UpdateUsername mirrors a username change onto the profile of the given user.
func (r *ProfileRepository) UpdateUsername(ctx context.Context, userID uuid.UUID, username string, at time.Time) error {
	return r.docs.updateOne(ctx, bson.M{"user_id": r.docs.codec.Match(userID)}, bson.M{"$set": bson.M{
		"username":   username,
		"updated_at": at,
	}})
}

// DeleteByUsername removes the profile with the given username.
func (r *ProfileRepository) DeleteByUsername(ctx context.Context, username string) error {
	return r.docs.deleteOne(ctx, bson.M{"username": username})
}

// DeleteByUserID removes the profile belonging to the given user.
func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.docs.deleteOne(ctx, bson.M{"user_id": r.docs.codec.Match(userID)})
}
