package services

//go:generate mockgen -source=notifications.go -destination=notifications_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
)

// NotificationStore persists notifications.
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	Confirm(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateNotificationInput is the data needed to create a notification.
type CreateNotificationInput struct {
	NotificationType models.NotificationType `json:"notification_type" validate:"required"`
	UserID           uuid.UUID               `json:"user_id" validate:"required"`
	Message          string                  `json:"message" validate:"required,max=1024"`
}

// NotificationService manages notifications.
type NotificationService struct {
	notifications NotificationStore
	guard         *Guard
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifications NotificationStore, guard *Guard) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		guard:         guard,
	}
}

// Create stores an unconfirmed notification for an existing user.
func (s *NotificationService) Create(ctx context.Context, in CreateNotificationInput) (*models.Notification, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.NotificationType.Valid() {
		return nil, invalid("unknown notification_type %q", in.NotificationType)
	}
	if err := s.guard.RequireUsers(ctx, in.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	notification := &models.Notification{
		NotificationID:   identity.New(),
		NotificationType: in.NotificationType,
		UserID:           in.UserID,
		Message:          in.Message,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		logger.Log.Errorw("failed to create notification", "user_id", in.UserID, "err", err)
		return nil, translate(err, nil, ErrNotificationAlreadyExists)
	}
	return notification, nil
}

// ListByUser returns the notifications addressed to userID.
func (s *NotificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	notifications, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "user_id", userID, "err", err)
		return nil, err
	}
	return notifications, nil
}

// Confirm marks a notification as seen. Confirming twice is a no-op.
func (s *NotificationService) Confirm(ctx context.Context, id uuid.UUID) error {
	changed, err := s.notifications.Confirm(ctx, id, time.Now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to confirm notification", "notification_id", id, "err", err)
		return translate(err, ErrNotificationNotFound, nil)
	}
	if !changed {
		logger.Log.Infow("notification already confirmed", "notification_id", id)
	}
	return nil
}

// Delete removes the notification with the given identifier.
func (s *NotificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.notifications.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete notification", "notification_id", id, "err", err)
		return translate(err, ErrNotificationNotFound, nil)
	}
	return nil
}
