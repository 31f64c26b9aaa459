package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, digest string) bool
}

type setPasswordInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// AuthService verifies and replaces user credentials.
type AuthService struct {
	users  UserStore
	hasher PasswordHasher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserStore, hasher PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
	}
}

// Login verifies a username and password. Unknown usernames and wrong
// passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Infow("login for unknown user", "username", username)
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if !svc.hasher.Check(password, user.Password) {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// SetPassword replaces the password of the user with the given email without
// checking the current one.
func (svc *AuthService) SetPassword(ctx context.Context, email, password string) error {
	if err := validateInput(setPasswordInput{Email: email, Password: password}); err != nil {
		return err
	}

	if _, err := svc.users.GetByEmail(ctx, email); err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return translate(err, ErrUserNotFound, nil)
	}

	return svc.store(ctx, email, password)
}

// ChangePassword replaces the password of the user with the given email after
// verifying the old one.
func (svc *AuthService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if err := validateInput(setPasswordInput{Email: email, Password: newPassword}); err != nil {
		return err
	}

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return translate(err, ErrUserNotFound, nil)
	}

	if !svc.hasher.Check(oldPassword, user.Password) {
		logger.Log.Infow("old password mismatch", "email", email)
		return ErrInvalidOldPassword
	}

	return svc.store(ctx, email, newPassword)
}

func (svc *AuthService) store(ctx context.Context, email, password string) error {
	digest, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.users.UpdatePassword(ctx, email, digest, time.Now().UTC()); err != nil {
		logger.Log.Errorw("failed to store password", "email", email, "err", err)
		return translate(err, ErrUserNotFound, nil)
	}
	return nil
}
