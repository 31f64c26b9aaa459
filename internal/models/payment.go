package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payment statuses. The set is open: any upper-cased value is stored as given.
const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusPending   = "PENDING"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// PaymentType describes how a payment was made.
type PaymentType struct {
	PaymentTypeID uuid.UUID `json:"payment_type_id" bson:"payment_type_id"` // Identifier
	PaymentType   string    `json:"payment_type" bson:"payment_type"`       // e.g. "card", "cash", "bank_transfer"
}

// Payment records money moving from a purchaser to a seller.
type Payment struct {
	PaymentID   uuid.UUID   `json:"payment_id" bson:"payment_id"`                       // Identifier
	PurchaserID uuid.UUID   `json:"purchaser_id" bson:"purchaser_id"`                   // Paying user
	SellerID    uuid.UUID   `json:"seller_id" bson:"seller_id"`                         // Receiving user
	PaymentType PaymentType `json:"payment_type" bson:"payment_type"`                   // Embedded payment type
	Description *string     `json:"description,omitempty" bson:"description,omitempty"` // Free text
	Amount      float64     `json:"amount" bson:"amount"`                               // Non-negative amount
	Currency    string      `json:"currency" bson:"currency"`                           // ISO 4217 code
	Status      string      `json:"status" bson:"status"`                               // Upper-cased status
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`                       // Creation timestamp
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`                       // Last update timestamp
}

// NormalizeStatus upper-cases a payment status and trims surrounding space.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}
