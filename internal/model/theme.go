package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ThemeConfig holds one tenant's design-token document (colors, fonts,
// spacing). Keyed by tenant so a shared deployment never leaks tokens
// across tenants.
type ThemeConfig struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  string         `gorm:"type:varchar(120);uniqueIndex;not null" json:"tenant_id"`
	Tokens    datatypes.JSON `gorm:"type:jsonb" json:"tokens"`
	UpdatedAt time.Time      `json:"updated_at"`
	CreatedAt time.Time      `json:"created_at"`
}

func (t *ThemeConfig) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
