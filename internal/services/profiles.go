package services

//go:generate mockgen -source=profiles.go -destination=profiles_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// ProfileStore persists profiles.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string, at time.Time) error
	DeleteByUsername(ctx context.Context, username string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// ProfileInput carries the writable fields of a profile. ProfileID is ignored on create.
type ProfileInput struct {
	ProfileID   uuid.UUID `json:"profile_id"`
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Username    string    `json:"username" validate:"required,max=64"`
	Email       string    `json:"email" validate:"required,email"`
	Bio         *string   `json:"bio" validate:"omitempty,max=1024"`
	ProfileType *string   `json:"profile_type" validate:"omitempty,max=64"`
	Business    *string   `json:"business" validate:"omitempty,max=256"`
	Interests   []string  `json:"interests" validate:"omitempty,dive,max=64"`
}

// ProfileService manages profiles.
type ProfileService struct {
	profiles ProfileStore
	guard    *Guard
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles ProfileStore, guard *Guard) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		guard:    guard,
	}
}

// Create stores a profile for an existing user that has none yet. The email must be unused.
// Registration creates profiles automatically; this covers users left without one.
func (s *ProfileService) Create(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.guard.RequireUsers(ctx, in.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &models.Profile{
		ProfileID:   identity.New(),
		UserID:      in.UserID,
		Username:    in.Username,
		Email:       in.Email,
		Bio:         in.Bio,
		ProfileType: in.ProfileType,
		Business:    in.Business,
		Interests:   in.Interests,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.guard.WriteIfAbsent(ctx, repositories.ProfilesCollection, in.Email, ErrProfileAlreadyExists,
		func(ctx context.Context) error {
			_, err := s.profiles.GetByEmail(ctx, in.Email)
			if err := absent(err, ErrProfileAlreadyExists); err != nil {
				return err
			}
			_, err = s.profiles.GetByUserID(ctx, in.UserID)
			return absent(err, ErrProfileAlreadyExists)
		},
		func(ctx context.Context) error {
			return s.profiles.Create(ctx, profile)
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to create profile", "user_id", in.UserID, "err", err)
		return nil, err
	}
	return profile, nil
}

// Get returns the profile with the given identifier.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrProfileNotFound, nil)
	}
	return profile, nil
}

// GetByUsername returns the profile with the given username.
func (s *ProfileService) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		return nil, translate(err, ErrProfileNotFound, nil)
	}
	return profile, nil
}

// List returns every profile.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list profiles", "err", err)
		return nil, err
	}
	return profiles, nil
}

// Update replaces the writable fields of the profile identified by in.ProfileID.
// The owning user cannot change, and a new email must be unused.
func (s *ProfileService) Update(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByID(ctx, in.ProfileID)
	if err != nil {
		return nil, translate(err, ErrProfileNotFound, nil)
	}
	if profile.UserID != in.UserID {
		return nil, invalid("user_id of a profile cannot change")
	}

	changedEmail := profile.Email != in.Email
	profile.Username = in.Username
	profile.Email = in.Email
	profile.Bio = in.Bio
	profile.ProfileType = in.ProfileType
	profile.Business = in.Business
	profile.Interests = in.Interests
	profile.UpdatedAt = time.Now().UTC()

	err = s.guard.WriteIfAbsent(ctx, repositories.ProfilesCollection, in.Email, ErrProfileAlreadyExists,
		func(ctx context.Context) error {
			if !changedEmail {
				return nil
			}
			_, err := s.profiles.GetByEmail(ctx, in.Email)
			return absent(err, ErrProfileAlreadyExists)
		},
		func(ctx context.Context) error {
			return translate(s.profiles.Update(ctx, profile), ErrProfileNotFound, ErrProfileAlreadyExists)
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "profile_id", in.ProfileID, "err", err)
		return nil, err
	}
	return profile, nil
}

// DeleteByUsername removes the profile with the given username.
func (s *ProfileService) DeleteByUsername(ctx context.Context, username string) error {
	if err := s.profiles.DeleteByUsername(ctx, username); err != nil {
		logger.Log.Errorw("failed to delete profile", "username", username, "err", err)
		return translate(err, ErrProfileNotFound, nil)
	}
	return nil
}
