package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of a user, created together with the user.
type Profile struct {
	ProfileID   uuid.UUID `json:"profile_id" bson:"profile_id"`                         // Identifier
	UserID      uuid.UUID `json:"user_id" bson:"user_id"`                               // Owning user, one profile per user
	Username    string    `json:"username" bson:"username"`                             // Mirrors User.Username
	Email       string    `json:"email" bson:"email"`                                   // Unique contact email
	Bio         *string   `json:"bio,omitempty" bson:"bio,omitempty"`                   // Short description
	ProfileType *string   `json:"profile_type,omitempty" bson:"profile_type,omitempty"` // e.g. "mentor", "founder"
	Business    *string   `json:"business,omitempty" bson:"business,omitempty"`         // Business the person presents
	Interests   []string  `json:"interests,omitempty" bson:"interests,omitempty"`       // Tags
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`                         // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`                         // Last update timestamp
}
