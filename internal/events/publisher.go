package events

import (
	"context"
	"time"

	"scriptvault/internal/clients/kafka"
	"scriptvault/internal/observability"
	"scriptvault/internal/store"

	"github.com/google/uuid"
)

// Script lifecycle event types
const (
	ScriptCreated = "script.created"
	ScriptUpdated = "script.updated"
	ScriptDeleted = "script.deleted"
)

// EventProducer delivers an encoded event to the broker
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher turns script changes into broker events
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger, now: time.Now}
}

// PublishScriptEvent publishes one lifecycle event keyed by script id
func (p *Publisher) PublishScriptEvent(ctx context.Context, eventType string, script store.Script) error {
	data := map[string]interface{}{
		"script_id": script.ID.String(),
	}
	if eventType != ScriptDeleted {
		data["slug"] = script.Slug
		data["title"] = script.Title
		data["updated_at"] = script.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		Key:       script.ID.String(),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	})
}

// NoopPublisher is used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) PublishScriptEvent(context.Context, string, store.Script) error {
	return nil
}
