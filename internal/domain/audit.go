package domain

import "time"

type AuditAction string

const (
	AuditCreate     AuditAction = "create"
	AuditUpdate     AuditAction = "update"
	AuditSoftDelete AuditAction = "soft_delete"
)

// EntityChange is emitted explicitly at every mutation point with before and
// after snapshots. Sinks consume it; emission must never fail the mutation.
type EntityChange struct {
	EntityType string
	EntityID   string
	Action     AuditAction
	ActorID    string
	Before     any
	After      any
	OccurredAt time.Time
}

type AuditSink interface {
	Record(change EntityChange) error
}

// AuditEntry is the persisted form of an EntityChange, queryable through the
// admin API.
type AuditEntry struct {
	ID         uint
	EntityType string
	EntityID   string
	Action     AuditAction
	ActorID    string
	Before     string
	After      string
	CreatedAt  time.Time
}

type AuditLogRepository interface {
	List(page, limit int) ([]*AuditEntry, int64, error)
}
