package handlers

//go:generate mockgen -source=messages.go -destination=messages_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// MessageManager defines the message operations the handlers need.
type MessageManager interface {
	Send(ctx context.Context, in services.SendMessageInput) (*models.Message, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewSendMessageHandler returns an HTTP handler sending a direct message.
// @Summary Send a message
// @Description Stores the message and notifies the receiver.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body services.SendMessageInput true "Message"
// @Success 201 {object} models.Message "Message sent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages/send [post]
func NewSendMessageHandler(svc MessageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.SendMessageInput
		if !decodeBody(w, r, &in) {
			return
		}

		message, err := svc.Send(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, message)
	}
}

// NewDeleteMessageHandler returns an HTTP handler deleting a message.
// @Summary Delete a message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} handlers.MessageResponse "Message deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Message does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages/delete/{id} [delete]
func NewDeleteMessageHandler(svc MessageManager) http.HandlerFunc {
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

		writeMessage(w, "Message deleted successfully")
	}
}

// NewListMessagesHandler returns an HTTP handler listing every message.
// @Summary List messages
// @Tags messages
// @Produce json
// @Success 200 {array} models.Message "Messages"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages [get]
func NewListMessagesHandler(svc MessageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(messages))
	}
}

// NewGetMessageHandler returns an HTTP handler fetching a message.
// @Summary Get a message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} models.Message "Message"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Message does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages/{id} [get]
func NewGetMessageHandler(svc MessageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		message, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, message)
	}
}

// NewListMessagesByUserHandler returns an HTTP handler listing messages a user sent or received.
// @Summary List messages by user
// @Tags messages
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.Message "Messages"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages/user/{user_id} [get]
func NewListMessagesByUserHandler(svc MessageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}

		messages, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(messages))
	}
}
