package services

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, page repositories.Page) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, email, digest string, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegisterUserInput is the data needed to register a user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	UserType string `json:"user_type" validate:"max=32"`
}

// UpdateUserInput replaces the mutable fields of a user.
type UpdateUserInput struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Username string    `json:"username" validate:"required,max=64"`
	Email    string    `json:"email" validate:"required,email"`
	UserType string    `json:"user_type" validate:"max=32"`
}

// UserService registers, updates and removes users, keeping their profile
// and business ownership in step.
type UserService struct {
	users      UserStore
	profiles   ProfileStore
	businesses BusinessStore
	hasher     PasswordHasher
	guard      *Guard
	events     *Publisher
}

// NewUserService creates a new UserService.
func NewUserService(
	users UserStore,
	profiles ProfileStore,
	businesses BusinessStore,
	hasher PasswordHasher,
	guard *Guard,
	events *Publisher,
) *UserService {
	return &UserService{
		users:      users,
		profiles:   profiles,
		businesses: businesses,
		hasher:     hasher,
		guard:      guard,
		events:     events,
	}
}

// Register stores a new user together with its profile.
//
// The user and profile inserts are not atomic. When the profile insert fails
// the user is left without a profile; Register then returns ErrOrphanedUser and
// publishes a user.orphaned event for reconciliation instead of retrying.
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		UserID:    identity.New(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  digest,
		UserType:  in.UserType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.guard.WriteIfAbsent(ctx, repositories.UsersCollection, in.Username, ErrUserAlreadyExists,
		func(ctx context.Context) error {
			_, err := s.users.GetByUsername(ctx, in.Username)
			if err := absent(err, ErrUserAlreadyExists); err != nil {
				return err
			}
			_, err = s.users.GetByEmail(ctx, in.Email)
			if err := absent(err, ErrUserAlreadyExists); err != nil {
				return err
			}
			_, err = s.profiles.GetByEmail(ctx, in.Email)
			return absent(err, ErrProfileAlreadyExists)
		},
		func(ctx context.Context) error {
			return s.users.Create(ctx, user)
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to register user", "username", in.Username, "err", err)
		return nil, err
	}

	profile := &models.Profile{
		ProfileID: identity.New(),
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		logger.Log.Errorw("user stored without profile", "user_id", user.UserID, "username", user.Username, "err", err)
		s.events.Publish(ctx, models.EventUserOrphaned, user.UserID, user.UserID, user)
		return nil, fmt.Errorf("%w: %v", ErrOrphanedUser, err)
	}

	s.events.Publish(ctx, models.EventUserRegistered, user.UserID, user.UserID, user)
	return user, nil
}

// Get returns the user with the given username.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, translate(err, ErrUserNotFound, nil)
	}
	return user, nil
}

// List returns one page of users.
func (s *UserService) List(ctx context.Context, page, limit int) ([]models.User, error) {
	users, err := s.users.List(ctx, Paginate(page, limit))
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Update replaces the mutable fields of a user. A new username must be free
// and is mirrored onto the user's profile. A new email must be free too.
func (s *UserService) Update(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, translate(err, ErrUserNotFound, nil)
	}

	renamed := user.Username != in.Username
	emailChanged := user.Email != in.Email
	user.Username = in.Username
	user.Email = in.Email
	user.UserType = in.UserType
	user.UpdatedAt = time.Now().UTC()

	err = s.guard.WriteIfAbsent(ctx, repositories.UsersCollection, in.Username, ErrUserAlreadyExists,
		func(ctx context.Context) error {
			if renamed {
				_, err := s.users.GetByUsername(ctx, in.Username)
				if err := absent(err, ErrUserAlreadyExists); err != nil {
					return err
				}
			}
			if emailChanged {
				_, err := s.users.GetByEmail(ctx, in.Email)
				return absent(err, ErrUserAlreadyExists)
			}
			return nil
		},
		func(ctx context.Context) error {
			return translate(s.users.Update(ctx, user), ErrUserNotFound, ErrUserAlreadyExists)
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", in.UserID, "err", err)
		return nil, err
	}

	if renamed {
		err := s.profiles.UpdateUsername(ctx, user.UserID, user.Username, user.UpdatedAt)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			logger.Log.Warnw("user has no profile to mirror username onto", "user_id", user.UserID)
		case err != nil:
			logger.Log.Errorw("failed to mirror username onto profile", "user_id", user.UserID, "err", err)
			return nil, err
		}
	}

	return user, nil
}

// Delete removes a user, its profile and its business ownerships. Payments,
// messages, trainings, reviews and notifications are kept as history.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
		return translate(err, ErrUserNotFound, nil)
	}

	err := s.profiles.DeleteByUserID(ctx, id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		logger.Log.Warnw("deleted user had no profile", "user_id", id)
	case err != nil:
		logger.Log.Errorw("failed to delete profile of deleted user", "user_id", id, "err", err)
		return err
	}

	n, err := s.businesses.RemoveOwner(ctx, id, time.Now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to remove deleted user from businesses", "user_id", id, "err", err)
		return err
	}
	logger.Log.Infow("user deleted", "user_id", id, "businesses_updated", n)

	s.events.Publish(ctx, models.EventUserDeleted, id, id, nil)
	return nil
}
