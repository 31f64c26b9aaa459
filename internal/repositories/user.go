package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository persists users.
type UserRepository struct {
	docs documents[models.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{docs: newDocuments[models.User](s, UsersCollection)}
}

func (r *UserRepository) byID(id uuid.UUID) bson.M {
	return bson.M{"user_id": r.docs.codec.Match(id)}
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.docs.insert(ctx, user)
}

// GetByID returns the user with the given identifier.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.docs.findOne(ctx, r.byID(id))
}

// GetByUsername returns the user with the given username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.docs.findOne(ctx, bson.M{"username": username})
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.docs.findOne(ctx, bson.M{"email": email})
}

// Exists reports whether a user with the given identifier is stored.
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.docs.exists(ctx, r.byID(id))
}

// List returns a page of users ordered by creation time.
func (r *UserRepository) List(ctx context.Context, page Page) ([]models.User, error) {
	return r.docs.find(ctx, bson.M{}, page)
}

// Update overwrites the mutable fields of the user identified by user.UserID.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.docs.updateOne(ctx, r.byID(user.UserID), bson.M{"$set": bson.M{
		"username":   user.Username,
		"email":      user.Email,
		"user_type":  user.UserType,
		"updated_at": user.UpdatedAt,
	}})
}

// UpdatePassword stores a new password digest for the user with the given email.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, digest string, at time.Time) error {
	return r.docs.updateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"password":   digest,
		"updated_at": at,
	}})
}

// Delete removes the user with the given identifier.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.deleteOne(ctx, r.byID(id))
}
