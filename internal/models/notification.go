package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates what a notification is about.
type NotificationType string

const (
	NotificationSomeoneSentMessage   NotificationType = "SOMEONE_SENT_MESSAGE"
	NotificationSomeoneLikedPost     NotificationType = "SOMEONE_LIKED_POST"
	NotificationSomeoneViewedProfile NotificationType = "SOMEONE_VIEWED_PROFILE"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationSomeoneSentMessage, NotificationSomeoneLikedPost, NotificationSomeoneViewedProfile:
		return true
	}
	return false
}

// Notification informs a user about activity concerning them.
// Confirmed only ever moves from false to true.
type Notification struct {
	NotificationID   uuid.UUID        `json:"notification_id" bson:"notification_id"`     // Handle for confirm and delete
	NotificationType NotificationType `json:"notification_type" bson:"notification_type"` // Kind of activity
	UserID           uuid.UUID        `json:"user_id" bson:"user_id"`                     // Recipient
	Message          string           `json:"message" bson:"message"`                     // Human readable text
	Confirmed        bool             `json:"confirmed" bson:"confirmed"`                 // Seen by the recipient
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`               // Creation timestamp
	UpdatedAt        time.Time        `json:"updated_at" bson:"updated_at"`               // Last update timestamp
}
