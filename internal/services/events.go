package services

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/logger"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// publishEvent publishes a mutation event. Failures are logged and never returned:
// the mutation has already been committed.
func publishEvent(ctx context.Context, w KafkaWriter, entity, operation string, entityID uuid.UUID, actor *models.Actor) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "entity", entity, "operation", operation)
		return
	}

	evt := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Entity:    entity,
		EntityID:  entityID.String(),
		Operation: operation,
	}
	if actor != nil {
		evt.ActorID = actor.ID.String()
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EntityID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "entity", entity, "operation", operation)
}
