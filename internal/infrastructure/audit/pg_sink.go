package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

// PGSink persists entity-change events so the audit trail stays queryable
// through the admin API even when no consumer reads the event topic.
type PGSink struct {
	db *gorm.DB
}

func NewPGSink(db *gorm.DB) *PGSink {
	return &PGSink{db: db}
}

func (s *PGSink) Record(change domain.EntityChange) error {
	entry := models.AuditEntryModel{
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		Action:     string(change.Action),
		ActorID:    change.ActorID,
		Before:     marshalSnapshot(change.Before),
		After:      marshalSnapshot(change.After),
		CreatedAt:  change.OccurredAt,
	}
	return s.db.Create(&entry).Error
}

func marshalSnapshot(snapshot any) string {
	if snapshot == nil {
		return "null"
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return "null"
	}
	return string(raw)
}
