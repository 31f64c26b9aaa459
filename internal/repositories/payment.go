package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// PaymentRepository persists payments.
type PaymentRepository struct {
	docs documents[models.Payment]
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(s *Store) *PaymentRepository {
	return &PaymentRepository{docs: newDocuments[models.Payment](s, PaymentsCollection)}
}

// Create inserts a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.docs.insert(ctx, payment)
}

// GetByID returns the payment with the given identifier.
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return r.docs.findOne(ctx, bson.M{"payment_id": r.docs.codec.Match(id)})
}

// List returns a page of payments ordered by creation time.
func (r *PaymentRepository) List(ctx context.Context, page Page) ([]models.Payment, error) {
	return r.docs.find(ctx, bson.M{}, page)
}

// ListBySeller returns the payments received by sellerID.
func (r *PaymentRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Payment, error) {
	return r.docs.find(ctx, bson.M{"seller_id": r.docs.codec.Match(sellerID)}, Page{})
}

// ListByPurchaser returns the payments made by purchaserID.
func (r *PaymentRepository) ListByPurchaser(ctx context.Context, purchaserID uuid.UUID) ([]models.Payment, error) {
	return r.docs.find(ctx, bson.M{"purchaser_id": r.docs.codec.Match(purchaserID)}, Page{})
}

// Update overwrites the mutable fields of the payment identified by payment.PaymentID.
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.docs.updateOne(ctx, bson.M{"payment_id": r.docs.codec.Match(payment.PaymentID)}, bson.M{"$set": bson.M{
		"purchaser_id": r.docs.codec.Value(payment.PurchaserID),
		"seller_id":    r.docs.codec.Value(payment.SellerID),
		"payment_type": bson.M{
			"payment_type_id": r.docs.codec.Value(payment.PaymentType.PaymentTypeID),
			"payment_type":    payment.PaymentType.PaymentType,
		},
		"description": payment.Description,
		"amount":      payment.Amount,
		"currency":    payment.Currency,
		"status":      payment.Status,
		"updated_at":  payment.UpdatedAt,
	}})
}

// Delete removes the payment with the given identifier.
func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.deleteOne(ctx, bson.M{"payment_id": r.docs.codec.Match(id)})
}
