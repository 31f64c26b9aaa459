package handlers

//go:generate mockgen -source=payments.go -destination=payments_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// PaymentManager defines the payment operations the handlers need.
type PaymentManager interface {
	Add(ctx context.Context, in services.PaymentInput) (*models.Payment, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context, page, limit int) ([]models.Payment, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Payment, error)
	ListByPurchaser(ctx context.Context, purchaserID uuid.UUID) ([]models.Payment, error)
	Update(ctx context.Context, in services.PaymentInput) (*models.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewAddPaymentHandler returns an HTTP handler recording a payment.
// @Summary Add a payment
// @Description Purchaser and seller must exist. Currency and status are upper-cased.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body services.PaymentInput true "Payment"
// @Success 201 {object} models.Payment "Payment added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments/add [post]
func NewAddPaymentHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.PaymentInput
		if !decodeBody(w, r, &in) {
			return
		}

		payment, err := svc.Add(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, payment)
	}
}

// NewUpdatePaymentHandler returns an HTTP handler replacing a payment's fields.
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body services.PaymentInput true "Payment, identified by payment_id"
// @Success 200 {object} models.Payment "Payment updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Payment does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments/update [put]
func NewUpdatePaymentHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.PaymentInput
		if !decodeBody(w, r, &in) {
			return
		}

		payment, err := svc.Update(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}

// NewDeletePaymentHandler returns an HTTP handler deleting a payment.
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} handlers.MessageResponse "Payment deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Payment does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments/delete/{id} [delete]
func NewDeletePaymentHandler(svc PaymentManager) http.HandlerFunc {
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

		writeMessage(w, "Payment deleted successfully")
	}
}

// NewListPaymentsHandler returns an HTTP handler listing one page of payments.
// @Summary List payments
// @Tags payments
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} models.Payment "Payments"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments [get]
func NewListPaymentsHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := pageQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		payments, err := svc.List(r.Context(), page, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(payments))
	}
}

// NewGetPaymentHandler returns an HTTP handler fetching a payment.
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} models.Payment "Payment"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Payment does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments/{id} [get]
func NewGetPaymentHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		payment, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}

// NewListPaymentsBySellerHandler returns an HTTP handler listing payments a user received.
// @Summary List payments by seller
// @Tags payments
// @Produce json
// @Param seller_id path string true "Seller user ID"
// @Success 200 {array} models.Payment "Payments"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments/seller/{seller_id} [get]
func NewListPaymentsBySellerHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "seller_id")
		if err != nil {
			writeError(w, err)
			return
		}

		payments, err := svc.ListBySeller(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(payments))
	}
}

// NewListPaymentsByPurchaserHandler returns an HTTP handler listing payments a user made.
// @Summary List payments by purchaser
// @Tags payments
// @Produce json
// @Param purchaser_id path string true "Purchaser user ID"
// @Success 200 {array} models.Payment "Payments"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments/purchaser/{purchaser_id} [get]
func NewListPaymentsByPurchaserHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "purchaser_id")
		if err != nil {
			writeError(w, err)
			return
		}

		payments, err := svc.ListByPurchaser(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(payments))
	}
}
