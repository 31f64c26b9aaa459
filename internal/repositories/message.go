package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// MessageRepository persists messages. Messages have no update path.
type MessageRepository struct {
	docs documents[models.Message]
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(s *Store) *MessageRepository {
	return &MessageRepository{docs: newDocuments[models.Message](s, MessagesCollection)}
}

// Create inserts a new message.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.docs.insert(ctx, message)
}

// GetByID returns the message with the given identifier.
func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	return r.docs.findOne(ctx, bson.M{"message_id": r.docs.codec.Match(id)})
}

// List returns every message.
func (r *MessageRepository) List(ctx context.Context) ([]models.Message, error) {
	return r.docs.find(ctx, bson.M{}, Page{})
}

// ListByUser returns the messages userID sent or received.
func (r *MessageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	match := r.docs.codec.Match(userID)
	return r.docs.find(ctx, bson.M{"$or": bson.A{
		bson.M{"sender": match},
		bson.M{"receiver": match},
	}}, Page{})
}

// Delete removes the message with the given identifier.
func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.deleteOne(ctx, bson.M{"message_id": r.docs.codec.Match(id)})
}
