package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// TrainingRepository persists trainings.
type TrainingRepository struct {
	docs documents[models.Training]
}

// NewTrainingRepository creates a new TrainingRepository.
func NewTrainingRepository(s *Store) *TrainingRepository {
	return &TrainingRepository{docs: newDocuments[models.Training](s, TrainingsCollection)}
}

// Create inserts a new training.
func (r *TrainingRepository) Create(ctx context.Context, training *models.Training) error {
	return r.docs.insert(ctx, training)
}

// GetByID returns the training with the given identifier.
func (r *TrainingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	return r.docs.findOne(ctx, bson.M{"training_id": r.docs.codec.Match(id)})
}

// List returns a page of trainings ordered by creation time.
func (r *TrainingRepository) List(ctx context.Context, page Page) ([]models.Training, error) {
	return r.docs.find(ctx, bson.M{}, page)
}

// Update overwrites the mutable fields of the training identified by training.TrainingID.
func (r *TrainingRepository) Update(ctx context.Context, training *models.Training) error {
	return r.docs.updateOne(ctx, bson.M{"training_id": r.docs.codec.Match(training.TrainingID)}, bson.M{"$set": bson.M{
		"trainer_id":  r.docs.codec.Value(training.TrainerID),
		"title":       training.Title,
		"description": training.Description,
		"start_date":  training.StartDate,
		"end_date":    training.EndDate,
		"duration":    training.Duration,
		"updated_at":  training.UpdatedAt,
	}})
}

// Delete removes the training with the given identifier.
func (r *TrainingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.deleteOne(ctx, bson.M{"training_id": r.docs.codec.Match(id)})
}
