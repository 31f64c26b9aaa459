package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the users collection.
type User struct {
	UserID    uuid.UUID `json:"user_id" bson:"user_id"`       // Identifier
	Username  string    `json:"username" bson:"username"`     // Unique username
	Email     string    `json:"email" bson:"email"`           // User email, mirrored into the profile at registration
	Password  string    `json:"-" bson:"password"`            // Bcrypt digest, never serialized to clients
	UserType  string    `json:"user_type" bson:"user_type"`   // Free-form account type (e.g. "individual", "business")
	CreatedAt time.Time `json:"created_at" bson:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"` // Last update timestamp
}
