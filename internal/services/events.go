package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/metrics"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher publishes domain events. Publishing is best effort: failures are
// logged and never fail the request that caused the event.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a new Publisher. writer may be nil, which disables publishing.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish sends one event keyed by entityID.
func (p *Publisher) Publish(ctx context.Context, eventType string, entityID, userID uuid.UUID, payload any) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "entity_id", entityID)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		EntityID:  entityID.String(),
		UserID:    userID.String(),
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "type", eventType, "entity_id", entityID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	}

	err = p.writer.WriteMessages(ctx, msg)
	metrics.RecordEvent(eventType, err)
	if err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "type", eventType, "entity_id", entityID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "type", eventType, "entity_id", entityID)
	}
}
