package services

//go:generate mockgen -source=trainings.go -destination=trainings_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// TrainingStore persists trainings.
type TrainingStore interface {
	Create(ctx context.Context, training *models.Training) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Training, error)
	List(ctx context.Context, page repositories.Page) ([]models.Training, error)
	Update(ctx context.Context, training *models.Training) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TrainingInput carries the writable fields of a training. TrainingID is ignored on create.
type TrainingInput struct {
	TrainingID  uuid.UUID  `json:"training_id"`
	TrainerID   uuid.UUID  `json:"trainer_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=256"`
	Description string     `json:"description" validate:"max=4096"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Duration    string     `json:"duration" validate:"max=64"`
}

func (in TrainingInput) apply(t *models.Training) {
	t.TrainerID = in.TrainerID
	t.Title = in.Title
	t.Description = in.Description
	t.StartDate = in.StartDate
	t.EndDate = in.EndDate
	t.Duration = in.Duration
}

// TrainingService manages trainings.
type TrainingService struct {
	trainings TrainingStore
	guard     *Guard
}

// NewTrainingService creates a new TrainingService.
func NewTrainingService(trainings TrainingStore, guard *Guard) *TrainingService {
	return &TrainingService{
		trainings: trainings,
		guard:     guard,
	}
}

func (s *TrainingService) check(ctx context.Context, in TrainingInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	if !(&models.Training{StartDate: in.StartDate, EndDate: in.EndDate}).ValidDates() {
		return invalid("start_date must not be after end_date")
	}
	return s.guard.RequireUsers(ctx, in.TrainerID)
}

// Add stores a training held by an existing trainer.
func (s *TrainingService) Add(ctx context.Context, in TrainingInput) (*models.Training, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	training := &models.Training{
		TrainingID: identity.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	in.apply(training)

	if err := s.trainings.Create(ctx, training); err != nil {
		logger.Log.Errorw("failed to add training", "trainer_id", in.TrainerID, "err", err)
		return nil, translate(err, nil, ErrTrainingAlreadyExists)
	}
	return training, nil
}

// Get returns the training with the given identifier.
func (s *TrainingService) Get(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	training, err := s.trainings.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrTrainingNotFound, nil)
	}
	return training, nil
}

// List returns one page of trainings.
func (s *TrainingService) List(ctx context.Context, page, limit int) ([]models.Training, error) {
	trainings, err := s.trainings.List(ctx, Paginate(page, limit))
	if err != nil {
		logger.Log.Errorw("failed to list trainings", "err", err)
		return nil, err
	}
	return trainings, nil
}

// Update replaces the writable fields of the training identified by in.TrainingID.
func (s *TrainingService) Update(ctx context.Context, in TrainingInput) (*models.Training, error) {
	training, err := s.trainings.GetByID(ctx, in.TrainingID)
	if err != nil {
		return nil, translate(err, ErrTrainingNotFound, nil)
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}

	in.apply(training)
	training.UpdatedAt = time.Now().UTC()

	if err := s.trainings.Update(ctx, training); err != nil {
		logger.Log.Errorw("failed to update training", "training_id", in.TrainingID, "err", err)
		return nil, translate(err, ErrTrainingNotFound, nil)
	}
	return training, nil
}

// Delete removes the training with the given identifier.
func (s *TrainingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trainings.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete training", "training_id", id, "err", err)
		return translate(err, ErrTrainingNotFound, nil)
	}
	return nil
}
