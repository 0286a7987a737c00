package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// License stores one tenant's issued license token. The token itself is
// self-describing (signed payload); this row only keys it by tenant.
type License struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"tenant_id"`
	Token     string    `gorm:"type:text;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *License) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
