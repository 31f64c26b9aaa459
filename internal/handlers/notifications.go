package handlers

//go:generate mockgen -source=notifications.go -destination=notifications_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// NotificationManager defines the notification operations the handlers need.
type NotificationManager interface {
	Create(ctx context.Context, in services.CreateNotificationInput) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewCreateNotificationHandler returns an HTTP handler creating a notification.
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body services.CreateNotificationInput true "Notification"
// @Success 201 {object} models.Notification "Notification created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 409 {object} handlers.ErrorResponse "Notification already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notifications/create [post]
func NewCreateNotificationHandler(svc NotificationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.CreateNotificationInput
		if !decodeBody(w, r, &in) {
			return
		}

		notification, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, notification)
	}
}

// NewListNotificationsHandler returns an HTTP handler listing a user's notifications.
// @Summary List notifications of a user
// @Tags notifications
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.Notification "Notifications"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notifications/{user_id} [get]
func NewListNotificationsHandler(svc NotificationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}

		notifications, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(notifications))
	}
}

// NewConfirmNotificationHandler returns an HTTP handler marking a notification as seen.
// @Summary Confirm a notification
// @Description Confirming an already confirmed notification succeeds without change.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} handlers.MessageResponse "Notification confirmed"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Notification does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notifications/confirm/{id} [put]
func NewConfirmNotificationHandler(svc NotificationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Confirm(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		writeMessage(w, "Notification confirmed")
	}
}

// NewDeleteNotificationHandler returns an HTTP handler deleting a notification.
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} handlers.MessageResponse "Notification deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Notification does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notifications/delete/{id} [delete]
func NewDeleteNotificationHandler(svc NotificationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		writeMessage(w, "Notification deleted successfully")
	}
}
