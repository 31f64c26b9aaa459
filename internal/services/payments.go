package services

//go:generate mockgen -source=payments.go -destination=payments_mock.go -package=services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// PaymentStore persists payments.
type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context, page repositories.Page) ([]models.Payment, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Payment, error)
	ListByPurchaser(ctx context.Context, purchaserID uuid.UUID) ([]models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentInput carries the writable fields of a payment. PaymentID is ignored on create.
type PaymentInput struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	PurchaserID   uuid.UUID `json:"purchaser_id" validate:"required"`
	SellerID      uuid.UUID `json:"seller_id" validate:"required"`
	PaymentTypeID uuid.UUID `json:"payment_type_id"`
	PaymentType   string    `json:"payment_type" validate:"required,max=64"`
	Description   *string   `json:"description" validate:"omitempty,max=1024"`
	Amount        float64   `json:"amount" validate:"gte=0"`
	Currency      string    `json:"currency" validate:"required,len=3,alpha"`
	Status        string    `json:"status" validate:"required,max=32"`
}

func (in *PaymentInput) normalize() {
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	in.Status = models.NormalizeStatus(in.Status)
	in.PaymentType = strings.TrimSpace(in.PaymentType)
}

// apply copies the input onto p. A nil PaymentTypeID keeps the stored one,
// or mints a new one when p has none yet.
func (in PaymentInput) apply(p *models.Payment) {
	typeID := in.PaymentTypeID
	if typeID == uuid.Nil {
		typeID = p.PaymentType.PaymentTypeID
	}
	if typeID == uuid.Nil {
		typeID = identity.New()
	}
	p.PurchaserID = in.PurchaserID
	p.SellerID = in.SellerID
	p.PaymentType = models.PaymentType{PaymentTypeID: typeID, PaymentType: in.PaymentType}
	p.Description = in.Description
	p.Amount = in.Amount
	p.Currency = in.Currency
	p.Status = in.Status
}

// PaymentService records payments between users.
type PaymentService struct {
	payments PaymentStore
	guard    *Guard
	events   *Publisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(payments PaymentStore, guard *Guard, events *Publisher) *PaymentService {
	return &PaymentService{
		payments: payments,
		guard:    guard,
		events:   events,
	}
}

// Add stores a payment between two existing users.
func (s *PaymentService) Add(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.guard.RequireUsers(ctx, in.PurchaserID, in.SellerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		PaymentID: identity.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(payment)

	if err := s.payments.Create(ctx, payment); err != nil {
		logger.Log.Errorw("failed to add payment", "purchaser_id", in.PurchaserID, "seller_id", in.SellerID, "err", err)
		return nil, translate(err, nil, ErrPaymentAlreadyExists)
	}

	s.events.Publish(ctx, models.EventPaymentAdded, payment.PaymentID, payment.PurchaserID, payment)
	return payment, nil
}

// Get returns the payment with the given identifier.
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrPaymentNotFound, nil)
	}
	return payment, nil
}

// List returns one page of payments.
func (s *PaymentService) List(ctx context.Context, page, limit int) ([]models.Payment, error) {
	payments, err := s.payments.List(ctx, Paginate(page, limit))
	if err != nil {
		logger.Log.Errorw("failed to list payments", "err", err)
		return nil, err
	}
	return payments, nil
}

// ListBySeller returns the payments received by sellerID.
func (s *PaymentService) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Payment, error) {
	payments, err := s.payments.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to list payments by seller", "seller_id", sellerID, "err", err)
		return nil, err
	}
	return payments, nil
}

// ListByPurchaser returns the payments made by purchaserID.
func (s *PaymentService) ListByPurchaser(ctx context.Context, purchaserID uuid.UUID) ([]models.Payment, error) {
	payments, err := s.payments.ListByPurchaser(ctx, purchaserID)
	if err != nil {
		logger.Log.Errorw("failed to list payments by purchaser", "purchaser_id", purchaserID, "err", err)
		return nil, err
	}
	return payments, nil
}

// Update replaces the writable fields of the payment identified by in.PaymentID.
func (s *PaymentService) Update(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}

	payment, err := s.payments.GetByID(ctx, in.PaymentID)
	if err != nil {
		return nil, translate(err, ErrPaymentNotFound, nil)
	}
	if err := s.guard.RequireUsers(ctx, in.PurchaserID, in.SellerID); err != nil {
		return nil, err
	}

	in.apply(payment)
	payment.UpdatedAt = time.Now().UTC()

	if err := s.payments.Update(ctx, payment); err != nil {
		logger.Log.Errorw("failed to update payment", "payment_id", in.PaymentID, "err", err)
		return nil, translate(err, ErrPaymentNotFound, nil)
	}
	return payment, nil
}

// Delete removes the payment with the given identifier.
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete payment", "payment_id", id, "err", err)
		return translate(err, ErrPaymentNotFound, nil)
	}
	return nil
}
