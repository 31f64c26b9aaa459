package services

//go:generate mockgen -source=messages.go -destination=messages_mock.go -package=services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
)

// MessageStore persists messages.
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SendMessageInput is the data needed to send a message.
type SendMessageInput struct {
	Sender   uuid.UUID `json:"sender" validate:"required"`
	Receiver uuid.UUID `json:"receiver" validate:"required"`
	Content  string    `json:"content" validate:"required,max=8192"`
}

// MessageService sends and retrieves direct messages.
type MessageService struct {
	messages      MessageStore
	notifications NotificationStore
	guard         *Guard
	events        *Publisher
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages MessageStore, notifications NotificationStore, guard *Guard, events *Publisher) *MessageService {
	return &MessageService{
		messages:      messages,
		notifications: notifications,
		guard:         guard,
		events:        events,
	}
}

// Send stores a message between two existing users and notifies the receiver.
// The notification is best effort: its failure is logged and the message still counts as sent.
func (s *MessageService) Send(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.guard.RequireUsers(ctx, in.Sender, in.Receiver); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	message := &models.Message{
		MessageID: identity.New(),
		Sender:    in.Sender,
		Receiver:  in.Receiver,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		logger.Log.Errorw("failed to send message", "sender", in.Sender, "receiver", in.Receiver, "err", err)
		return nil, translate(err, nil, ErrMessageAlreadyExists)
	}

	notification := &models.Notification{
		NotificationID:   identity.New(),
		NotificationType: models.NotificationSomeoneSentMessage,
		UserID:           message.Receiver,
		Message:          fmt.Sprintf("New message %s", message.MessageID),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		logger.Log.Warnw("failed to notify receiver", "message_id", message.MessageID, "receiver", message.Receiver, "err", err)
	}

	s.events.Publish(ctx, models.EventMessageSent, message.MessageID, message.Receiver, message)
	return message, nil
}

// Get returns the message with the given identifier.
func (s *MessageService) Get(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	message, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrMessageNotFound, nil)
	}
	return message, nil
}

// List returns every message.
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "err", err)
		return nil, err
	}
	return messages, nil
}

// ListByUser returns the messages an existing user sent or received.
func (s *MessageService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	if err := s.guard.RequireUsers(ctx, userID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list messages by user", "user_id", userID, "err", err)
		return nil, err
	}
	return messages, nil
}

// Delete removes the message with the given identifier.
func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete message", "message_id", id, "err", err)
		return translate(err, ErrMessageNotFound, nil)
	}
	return nil
}
