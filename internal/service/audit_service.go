package service

import (
	"context"
	"encoding/json"
	"fmt"

	"backend/internal/model"
	"backend/pkg/pagination"

	"gorm.io/gorm"
)

// auditWindow bounds the audit listing to the newest entries; older history
// stays queryable through backups.
const auditWindow = 200

type AuditLogResponse struct {
	ID         string                 `json:"id"`
	ActorID    *string                `json:"actorId"`
	ActorEmail *string                `json:"actorEmail"`
	Action     string                 `json:"action"`
	Resource   string                 `json:"resource"`
	Metadata   map[string]interface{} `json:"metadata"`
	IPAddress  *string                `json:"ipAddress"`
	UserAgent  *string                `json:"userAgent"`
	CreatedAt  string                 `json:"createdAt"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, q pagination.Query) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) AuditService {
	return &auditService{db: db}
}

// GetAuditLogs pages newest-first through the most recent entries.
func (s *auditService) GetAuditLogs(ctx context.Context, q pagination.Query) ([]AuditLogResponse, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	if total > auditWindow {
		total = auditWindow
	}

	offset, limit := q.ClampToWindow(auditWindow)
	if limit == 0 {
		return []AuditLogResponse{}, total, nil
	}

	var logs []model.AuditLog
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, toAuditLogResponse(l))
	}
	return res, total, nil
}

func toAuditLogResponse(l model.AuditLog) AuditLogResponse {
	res := AuditLogResponse{
		ID:         l.ID.String(),
		ActorEmail: l.ActorEmail,
		Action:     l.Action,
		Resource:   l.Resource,
		IPAddress:  l.IPAddress,
		UserAgent:  l.UserAgent,
		CreatedAt:  formatTime(l.CreatedAt),
	}
	if l.ActorID != nil {
		id := l.ActorID.String()
		res.ActorID = &id
	}
	if len(l.Metadata) > 0 {
		meta := map[string]interface{}{}
		if err := json.Unmarshal(l.Metadata, &meta); err == nil {
			res.Metadata = meta
		}
	}
	return res
}
