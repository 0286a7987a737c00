package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaFile records an uploaded asset stored on local disk.
type MediaFile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FileName    string     `gorm:"type:varchar(255);not null" json:"file_name"`
	StoragePath string     `gorm:"type:varchar(1024);not null" json:"storage_path"`
	ContentType string     `gorm:"type:varchar(120)" json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	UploadedBy  *uuid.UUID `gorm:"type:uuid" json:"uploaded_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (f *MediaFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
