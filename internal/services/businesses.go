package services

//go:generate mockgen -source=businesses.go -destination=businesses_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// BusinessStore persists businesses.
type BusinessStore interface {
	Create(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	GetByName(ctx context.Context, name string) (*models.Business, error)
	List(ctx context.Context, page repositories.Page) ([]models.Business, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Business, error)
	Update(ctx context.Context, business *models.Business) error
	RemoveOwner(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusinessInput carries the writable fields of a business. BusinessID is ignored on create.
type BusinessInput struct {
	BusinessID   uuid.UUID   `json:"business_id"`
	UserIDs      []uuid.UUID `json:"user_ids" validate:"required,min=1"`
	Name         string      `json:"name" validate:"required,max=128"`
	Description  string      `json:"description" validate:"max=4096"`
	Logo         *string     `json:"logo" validate:"omitempty,url"`
	Pictures     []string    `json:"pictures" validate:"omitempty,dive,url"`
	Founder      string      `json:"founder" validate:"required,max=128"`
	Industry     string      `json:"industry" validate:"required,max=128"`
	Phone        string      `json:"phone" validate:"required,max=32"`
	Address      *string     `json:"address" validate:"omitempty,max=256"`
	City         *string     `json:"city" validate:"omitempty,max=128"`
	Region       *string     `json:"region" validate:"omitempty,max=128"`
	Country      string      `json:"country" validate:"required,max=128"`
	Website      *string     `json:"website" validate:"omitempty,url"`
	ContactEmail *string     `json:"contact_email" validate:"omitempty,email"`
}

func (in BusinessInput) apply(b *models.Business) {
	b.UserIDs = in.UserIDs
	b.Name = in.Name
	b.Description = in.Description
	b.Logo = in.Logo
	b.Pictures = in.Pictures
	b.Founder = in.Founder
	b.Industry = in.Industry
	b.Phone = in.Phone
	b.Address = in.Address
	b.City = in.City
	b.Region = in.Region
	b.Country = in.Country
	b.Website = in.Website
	b.ContactEmail = in.ContactEmail
}

// BusinessService manages businesses and their ownership.
type BusinessService struct {
	businesses BusinessStore
	guard      *Guard
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(businesses BusinessStore, guard *Guard) *BusinessService {
	return &BusinessService{
		businesses: businesses,
		guard:      guard,
	}
}

// Register stores a new business. The name must be unused and every owner must exist.
func (s *BusinessService) Register(ctx context.Context, in BusinessInput) (*models.Business, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.guard.RequireUsers(ctx, in.UserIDs...); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	business := &models.Business{
		BusinessID: identity.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	in.apply(business)

	err := s.guard.WriteIfAbsent(ctx, repositories.BusinessesCollection, in.Name, ErrBusinessAlreadyExists,
		func(ctx context.Context) error {
			_, err := s.businesses.GetByName(ctx, in.Name)
			return absent(err, ErrBusinessAlreadyExists)
		},
		func(ctx context.Context) error {
			return s.businesses.Create(ctx, business)
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to register business", "name", in.Name, "err", err)
		return nil, err
	}
	return business, nil
}

// Get returns the business with the given identifier.
func (s *BusinessService) Get(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	business, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrBusinessNotFound, nil)
	}
	return business, nil
}

// List returns one page of businesses.
func (s *BusinessService) List(ctx context.Context, page, limit int) ([]models.Business, error) {
	businesses, err := s.businesses.List(ctx, Paginate(page, limit))
	if err != nil {
		logger.Log.Errorw("failed to list businesses", "err", err)
		return nil, err
	}
	return businesses, nil
}

// ListByOwner returns the businesses owned by an existing user.
func (s *BusinessService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Business, error) {
	if err := s.guard.RequireUsers(ctx, userID); err != nil {
		return nil, err
	}

	businesses, err := s.businesses.ListByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list businesses by owner", "user_id", userID, "err", err)
		return nil, err
	}
	return businesses, nil
}

// Update replaces the writable fields of the business identified by in.BusinessID.
func (s *BusinessService) Update(ctx context.Context, in BusinessInput) (*models.Business, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	business, err := s.businesses.GetByID(ctx, in.BusinessID)
	if err != nil {
		return nil, translate(err, ErrBusinessNotFound, nil)
	}
	if err := s.guard.RequireUsers(ctx, in.UserIDs...); err != nil {
		return nil, err
	}

	renamed := business.Name != in.Name
	in.apply(business)
	business.UpdatedAt = time.Now().UTC()

	err = s.guard.WriteIfAbsent(ctx, repositories.BusinessesCollection, in.Name, ErrBusinessAlreadyExists,
		func(ctx context.Context) error {
			if !renamed {
				return nil
			}
			_, err := s.businesses.GetByName(ctx, in.Name)
			return absent(err, ErrBusinessAlreadyExists)
		},
		func(ctx context.Context) error {
			return translate(s.businesses.Update(ctx, business), ErrBusinessNotFound, ErrBusinessAlreadyExists)
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to update business", "business_id", in.BusinessID, "err", err)
		return nil, err
	}
	return business, nil
}

// Delete removes the business with the given identifier.
func (s *BusinessService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.businesses.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete business", "business_id", id, "err", err)
		return translate(err, ErrBusinessNotFound, nil)
	}
	return nil
}
