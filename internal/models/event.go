package models

// Event types published to the event stream.
const (
	EventUserRegistered = "user.registered"
	EventUserOrphaned   = "user.orphaned"
	EventUserDeleted    = "user.deleted"
	EventPaymentAdded   = "payment.added"
	EventMessageSent    = "message.sent"
)

// Event is a domain event published after a successful write.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	EntityID  string `json:"entity_id"` // EntityID is the identifier of the entity the event is about.
	UserID    string `json:"user_id"`   // UserID is the user the event concerns, if any.
	Payload   any    `json:"payload"`   // Payload carries the entity snapshot.
}
