package models

import (
	"time"

	"github.com/google/uuid"
)

// Business is a company listing owned by one or more users.
type Business struct {
	BusinessID   uuid.UUID   `json:"business_id" bson:"business_id"`                         // Identifier
	UserIDs      []uuid.UUID `json:"user_ids" bson:"user_ids"`                               // Owners
	Name         string      `json:"name" bson:"name"`                                       // Unique name
	Description  string      `json:"description" bson:"description"`                         // Free text
	Logo         *string     `json:"logo,omitempty" bson:"logo,omitempty"`                   // Logo URL
	Pictures     []string    `json:"pictures,omitempty" bson:"pictures,omitempty"`           // Picture URLs
	Founder      string      `json:"founder" bson:"founder"`                                 // Founder name
	Industry     string      `json:"industry" bson:"industry"`                               // Industry
	Phone        string      `json:"phone" bson:"phone"`                                     // Contact phone
	Address      *string     `json:"address,omitempty" bson:"address,omitempty"`             // Street address
	City         *string     `json:"city,omitempty" bson:"city,omitempty"`                   // City
	Region       *string     `json:"region,omitempty" bson:"region,omitempty"`               // Region or state
	Country      string      `json:"country" bson:"country"`                                 // Country
	Website      *string     `json:"website,omitempty" bson:"website,omitempty"`             // Website URL
	ContactEmail *string     `json:"contact_email,omitempty" bson:"contact_email,omitempty"` // Contact email
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`                           // Creation timestamp
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`                           // Last update timestamp
}

// OwnedBy reports whether userID is among the business owners.
func (b *Business) OwnedBy(userID uuid.UUID) bool {
	for _, id := range b.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
