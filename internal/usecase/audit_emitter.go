package usecase

import (
	"log/slog"
	"time"

	"github.com/arabyads/influencer-service/internal/domain"
)

// AuditEmitter fans an entity change out to every configured sink. Sink
// failures are logged and swallowed so a broken audit pipeline never fails
// the mutation that triggered it.
type AuditEmitter struct {
	sinks []domain.AuditSink
}

func NewAuditEmitter(sinks ...domain.AuditSink) *AuditEmitter {
	return &AuditEmitter{sinks: sinks}
}

func (e *AuditEmitter) Emit(entityType, entityID string, action domain.AuditAction, actorID string, before, after any) {
	change := domain.EntityChange{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
		Before:     before,
		After:      after,
		OccurredAt: time.Now(),
	}
	for _, sink := range e.sinks {
		if err := sink.Record(change); err != nil {
			slog.Error("audit sink failed",
				"entity_type", entityType,
				"entity_id", entityID,
				"action", string(action),
				"error", err.Error())
		}
	}
}
