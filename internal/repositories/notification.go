package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// NotificationRepository persists notifications.
type NotificationRepository struct {
	docs documents[models.Notification]
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(s *Store) *NotificationRepository {
	return &NotificationRepository{docs: newDocuments[models.Notification](s, NotificationsCollection)}
}

func (r *NotificationRepository) byID(id uuid.UUID) bson.M {
	return bson.M{"notification_id": r.docs.codec.Match(id)}
}

// Create inserts a new notification.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.docs.insert(ctx, notification)
}

// GetByID returns the notification with the given identifier.
func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	return r.docs.findOne(ctx, r.byID(id))
}

// ListByUser returns the notifications addressed to userID.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	return r.docs.find(ctx, bson.M{"user_id": r.docs.codec.Match(userID)}, Page{})
}

// Confirm marks the notification as confirmed. It reports false without error
// when the notification was already confirmed, and ErrNotFound when it does not exist.
func (r *NotificationRepository) Confirm(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	filter := r.byID(id)
	filter["confirmed"] = false

	err := r.docs.updateOne(ctx, filter, bson.M{"$set": bson.M{
		"confirmed":  true,
		"updated_at": at,
	}})
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	ok, err := r.docs.exists(ctx, r.byID(id))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, errors.Wrap(ErrNotFound, NotificationsCollection)
	}
	return false, nil
}

// Delete removes the notification with the given identifier.
func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.deleteOne(ctx, r.byID(id))
}
