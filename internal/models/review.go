package models

import (
	"time"

	"github.com/google/uuid"
)

// Review targets.
const (
	ReviewTargetBusiness = "business"
	ReviewTargetProduct  = "product"
)

// Score bounds.
const (
	MinScore = 1
	MaxScore = 5
)

// Review is a rating a user leaves on a business or product.
type Review struct {
	ReviewID   uuid.UUID `json:"review_id" bson:"review_id"`                         // Identifier
	ReviewerID uuid.UUID `json:"reviewer_id" bson:"reviewer_id"`                     // Authoring user
	TargetType string    `json:"target_type" bson:"target_type"`                     // "business" or "product"
	TargetID   uuid.UUID `json:"target_id" bson:"target_id"`                         // Reviewed entity
	Score      int       `json:"score" bson:"score"`                                 // 1..5
	Comment    *string   `json:"comment,omitempty" bson:"comment,omitempty"`         // Free text
	ReviewLink *string   `json:"review_link,omitempty" bson:"review_link,omitempty"` // External link
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`                       // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`                       // Last update timestamp
}
