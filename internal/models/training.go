package models

import (
	"time"

	"github.com/google/uuid"
)

// Training is a session offered by a trainer.
type Training struct {
	TrainingID  uuid.UUID  `json:"training_id" bson:"training_id"`                   // Identifier
	TrainerID   uuid.UUID  `json:"trainer_id" bson:"trainer_id"`                     // Owning user
	Title       string     `json:"title" bson:"title"`                               // Title
	Description string     `json:"description" bson:"description"`                   // Free text
	StartDate   *time.Time `json:"start_date,omitempty" bson:"start_date,omitempty"` // Optional start
	EndDate     *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`     // Optional end, not before start
	Duration    string     `json:"duration" bson:"duration"`                         // Human readable duration, e.g. "2h"
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`                     // Creation timestamp
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`                     // Last update timestamp
}

// ValidDates reports whether the start date is not after the end date.
// Missing dates are always valid.
func (t *Training) ValidDates() bool {
	if t.StartDate == nil || t.EndDate == nil {
		return true
	}
	return !t.StartDate.After(*t.EndDate)
}
