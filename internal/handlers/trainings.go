package handlers

//go:generate mockgen -source=trainings.go -destination=trainings_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// TrainingManager defines the training operations the handlers need.
type TrainingManager interface {
	Add(ctx context.Context, in services.TrainingInput) (*models.Training, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Training, error)
	List(ctx context.Context, page, limit int) ([]models.Training, error)
	Update(ctx context.Context, in services.TrainingInput) (*models.Training, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewAddTrainingHandler returns an HTTP handler adding a training.
// @Summary Add a training
// @Tags trainings
// @Accept json
// @Produce json
// @Param request body services.TrainingInput true "Training"
// @Success 201 {object} models.Training "Training added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /trainings/add [post]
func NewAddTrainingHandler(svc TrainingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.TrainingInput
		if !decodeBody(w, r, &in) {
			return
		}

		training, err := svc.Add(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, training)
	}
}

// NewUpdateTrainingHandler returns an HTTP handler replacing a training's fields.
// @Summary Update a training
// @Tags trainings
// @Accept json
// @Produce json
// @Param request body services.TrainingInput true "Training, identified by training_id"
// @Success 200 {object} models.Training "Training updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Training does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /trainings/update [put]
func NewUpdateTrainingHandler(svc TrainingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.TrainingInput
		if !decodeBody(w, r, &in) {
			return
		}

		training, err := svc.Update(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, training)
	}
}

// NewDeleteTrainingHandler returns an HTTP handler deleting a training.
// @Summary Delete a training
// @Tags trainings
// @Produce json
// @Param id path string true "Training ID"
// @Success 200 {object} handlers.MessageResponse "Training deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Training does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /trainings/delete/{id} [delete]
func NewDeleteTrainingHandler(svc TrainingManager) http.HandlerFunc {
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

		writeMessage(w, "Training deleted successfully")
	}
}

// NewListTrainingsHandler returns an HTTP handler listing one page of trainings.
// @Summary List trainings
// @Tags trainings
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} models.Training "Trainings"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /trainings [get]
func NewListTrainingsHandler(svc TrainingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := pageQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		trainings, err := svc.List(r.Context(), page, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(trainings))
	}
}

// NewGetTrainingHandler returns an HTTP handler fetching a training.
// @Summary Get a training
// @Tags trainings
// @Produce json
// @Param id path string true "Training ID"
// @Success 200 {object} models.Training "Training"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Training does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /trainings/{id} [get]
func NewGetTrainingHandler(svc TrainingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		training, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, training)
	}
}
