package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionContentCreate  = "content.create"
	ActionContentUpdate  = "content.update"
	ActionContentDelete  = "content.delete"
	ActionUserRoleUpdate = "user.role.update"
	ActionThemeUpdate    = "theme.update"
	ActionAuthLogin      = "auth.login"
	ActionAuthLogout     = "auth.logout"
)

// AuditLog tracks Who, What, and When for every mutation. Rows are
// append-only: the application never updates or deletes them.
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActorID    *uuid.UUID     `gorm:"type:uuid;index" json:"actor_id"` // Nullable for anonymous/system actions
	ActorEmail *string        `gorm:"type:varchar(255)" json:"actor_email"`
	Action     string         `gorm:"type:varchar(50);not null;index" json:"action"`
	Resource   string         `gorm:"type:varchar(100);not null;index" json:"resource"` // Table/entity name
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	IPAddress  *string        `gorm:"type:varchar(64)" json:"ip_address"`
	UserAgent  *string        `gorm:"type:varchar(512)" json:"user_agent"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
