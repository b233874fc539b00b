package models

import (
	"time"

	"gorm.io/gorm"
)

// UserModel email uniqueness among live rows is a partial index in
// db/migrations.
type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Name         string `gorm:"size:255"`
	Email        string `gorm:"not null;index"`
	PasswordHash string
	IsStaff      bool
	IsActive     bool
	DateJoined   time.Time
	Groups       []GroupModel      `gorm:"many2many:user_groups;"`
	Permissions  []PermissionModel `gorm:"many2many:user_permissions;"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type GroupModel struct {
	ID          string            `gorm:"primaryKey;type:uuid"`
	Name        string            `gorm:"size:150;not null"`
	Permissions []PermissionModel `gorm:"many2many:group_permissions;"`
}

type PermissionModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Code string `gorm:"size:100;not null;uniqueIndex"`
	Name string `gorm:"size:255"`
}

// AuditEntryModel persists entity-change events; queryable through the admin
// API like the rest of the audit trail.
type AuditEntryModel struct {
	ID         uint   `gorm:"primaryKey"`
	EntityType string `gorm:"size:64;not null;index:idx_audit_entity"`
	EntityID   string `gorm:"size:64;index:idx_audit_entity"`
	Action     string `gorm:"size:16;not null"`
	ActorID    string `gorm:"size:64"`
	Before     string `gorm:"type:jsonb"`
	After      string `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"index"`
}
