package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/arabyads/influencer-service/internal/domain"
)

// EntityEvent is the wire form of an entity-change record published for
// downstream consumers (reporting, alerting).
type EntityEvent struct {
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Action     string          `json:"action"`
	ActorID    string          `json:"actor_id,omitempty"`
	Before     json.RawMessage `json:"before"`
	After      json.RawMessage `json:"after"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// AuditPublisher streams entity-change events to the entity-events topic.
// It implements domain.AuditSink.
type AuditPublisher struct {
	writer *kafka.Writer
}

func NewAuditPublisher(brokers []string, topic string) *AuditPublisher {
	return &AuditPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *AuditPublisher) Record(change domain.EntityChange) error {
	event := EntityEvent{
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		Action:     string(change.Action),
		ActorID:    change.ActorID,
		Before:     marshalRaw(change.Before),
		After:      marshalRaw(change.After),
		OccurredAt: change.OccurredAt,
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(change.EntityType + ":" + change.EntityID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *AuditPublisher) Close() error {
	return p.writer.Close()
}

func marshalRaw(snapshot any) json.RawMessage {
	if snapshot == nil {
		return json.RawMessage("null")
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}
