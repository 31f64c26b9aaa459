package handlers

//go:generate mockgen -source=reviews.go -destination=reviews_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// ReviewManager defines the review operations the handlers need.
type ReviewManager interface {
	Add(ctx context.Context, in services.AddReviewInput) (*models.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Review, error)
	List(ctx context.Context, page, limit int) ([]models.Review, error)
	Update(ctx context.Context, in services.UpdateReviewInput) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewAddReviewHandler returns an HTTP handler adding a review.
// @Summary Add a review
// @Description Rates a business or product from 1 to 5. Business targets must exist.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body services.AddReviewInput true "Review"
// @Success 201 {object} models.Review "Review added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User or business does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reviews/add [post]
func NewAddReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.AddReviewInput
		if !decodeBody(w, r, &in) {
			return
		}

		review, err := svc.Add(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// NewUpdateReviewHandler returns an HTTP handler replacing a review's rating.
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body services.UpdateReviewInput true "Review rating"
// @Success 200 {object} models.Review "Review updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Review does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reviews/update [put]
func NewUpdateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.UpdateReviewInput
		if !decodeBody(w, r, &in) {
			return
		}

		review, err := svc.Update(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, review)
	}
}

// NewDeleteReviewHandler returns an HTTP handler deleting a review.
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} handlers.MessageResponse "Review deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Review does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reviews/delete/{id} [delete]
func NewDeleteReviewHandler(svc ReviewManager) http.HandlerFunc {
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

		writeMessage(w, "Review deleted successfully")
	}
}

// NewListReviewsHandler returns an HTTP handler listing one page of reviews.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} models.Review "Reviews"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reviews [get]
func NewListReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := pageQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		reviews, err := svc.List(r.Context(), page, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(reviews))
	}
}

// NewGetReviewHandler returns an HTTP handler fetching a review.
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} models.Review "Review"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Review does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reviews/{id} [get]
func NewGetReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		review, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, review)
	}
}
