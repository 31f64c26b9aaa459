package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message from one user to another. Messages are never updated.
type Message struct {
	MessageID uuid.UUID `json:"message_id" bson:"message_id"` // Identifier
	Sender    uuid.UUID `json:"sender" bson:"sender"`         // Sending user
	Receiver  uuid.UUID `json:"receiver" bson:"receiver"`     // Receiving user
	Content   string    `json:"content" bson:"content"`       // Body
	CreatedAt time.Time `json:"created_at" bson:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"` // Equal to CreatedAt
}
