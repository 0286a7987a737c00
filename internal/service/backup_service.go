package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"

	"gorm.io/gorm"
)

// BackupDocument is a point-in-time JSON snapshot of every content,
// request and audit table plus the media-file listing.
type BackupDocument struct {
	GeneratedAt string `json:"generatedAt"`

	Services     []model.Service          `json:"services"`
	Destinations []model.Destination      `json:"destinations"`
	Banners      []model.Banner           `json:"banners"`
	Sections     []model.Section          `json:"sections"`
	Pages        []model.Page             `json:"pages"`
	Themes       []model.ThemeConfig      `json:"themes"`
	Requests     []model.ConciergeRequest `json:"requests"`
	AuditLogs    []model.AuditLog         `json:"auditLogs"`
	MediaFiles   []model.MediaFile        `json:"mediaFiles"`
}

type BackupService interface {
	Snapshot(ctx context.Context) (*BackupDocument, string, error)
}

type backupService struct {
	db *gorm.DB
}

func NewBackupService(db *gorm.DB) BackupService {
	return &backupService{db: db}
}

// Snapshot reads every table sequentially and returns the document with the
// timestamped download filename.
func (s *backupService) Snapshot(ctx context.Context) (*BackupDocument, string, error) {
	now := time.Now().UTC()
	doc := BackupDocument{GeneratedAt: now.Format(time.RFC3339)}

	db := s.db.WithContext(ctx)
	reads := []struct {
		name string
		dest interface{}
	}{
		{"services", &doc.Services},
		{"destinations", &doc.Destinations},
		{"banners", &doc.Banners},
		{"sections", &doc.Sections},
		{"pages", &doc.Pages},
		{"themes", &doc.Themes},
		{"requests", &doc.Requests},
		{"audit logs", &doc.AuditLogs},
		{"media files", &doc.MediaFiles},
	}
	for _, r := range reads {
		if err := db.Find(r.dest).Error; err != nil {
			return nil, "", fmt.Errorf("failed to snapshot %s: %w", r.name, err)
		}
	}

	filename := "backup-" + now.Format("20060102-150405") + ".json"
	return &doc, filename, nil
}
