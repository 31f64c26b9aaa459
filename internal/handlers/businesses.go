package handlers

//go:generate mockgen -source=businesses.go -destination=businesses_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// BusinessManager defines the business operations the handlers need.
type BusinessManager interface {
	Register(ctx context.Context, in services.BusinessInput) (*models.Business, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Business, error)
	List(ctx context.Context, page, limit int) ([]models.Business, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Business, error)
	Update(ctx context.Context, in services.BusinessInput) (*models.Business, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewRegisterBusinessHandler returns an HTTP handler registering a business.
// @Summary Register a business
// @Description The name must be unused and every owner in user_ids must exist.
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body services.BusinessInput true "Business"
// @Success 201 {object} models.Business "Business registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 409 {object} handlers.ErrorResponse "Business already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses/register [post]
func NewRegisterBusinessHandler(svc BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.BusinessInput
		if !decodeBody(w, r, &in) {
			return
		}

		business, err := svc.Register(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, business)
	}
}

// NewUpdateBusinessHandler returns an HTTP handler replacing a business's fields.
// @Summary Update a business
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body services.BusinessInput true "Business, identified by business_id"
// @Success 200 {object} models.Business "Business updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Business does not exist"
// @Failure 409 {object} handlers.ErrorResponse "Business already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses/update [put]
func NewUpdateBusinessHandler(svc BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.BusinessInput
		if !decodeBody(w, r, &in) {
			return
		}

		business, err := svc.Update(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}

// NewDeleteBusinessHandler returns an HTTP handler deleting a business.
// @Summary Delete a business
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} handlers.MessageResponse "Business deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Business does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses/delete/{id} [delete]
func NewDeleteBusinessHandler(svc BusinessManager) http.HandlerFunc {
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

		writeMessage(w, "Business deleted successfully")
	}
}

// NewListBusinessesHandler returns an HTTP handler listing one page of businesses.
// @Summary List businesses
// @Tags businesses
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} models.Business "Businesses"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses [get]
func NewListBusinessesHandler(svc BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := pageQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		businesses, err := svc.List(r.Context(), page, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(businesses))
	}
}

// NewGetBusinessHandler returns an HTTP handler fetching a business.
// @Summary Get a business
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} models.Business "Business"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Business does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses/{business_id} [get]
func NewGetBusinessHandler(svc BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "business_id")
		if err != nil {
			writeError(w, err)
			return
		}

		business, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}

// NewListBusinessesByOwnerHandler returns an HTTP handler listing the businesses a user owns.
// @Summary List businesses by owner
// @Tags businesses
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.Business "Businesses"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses/user/{user_id} [get]
func NewListBusinessesByOwnerHandler(svc BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}

		businesses, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(businesses))
	}
}
