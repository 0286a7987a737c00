package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChatStatusActive  = "active"
	ChatStatusWaiting = "waiting"
	ChatStatusClosed  = "closed"

	SenderVisitor = "visitor"
	SenderAdmin   = "admin"
	SenderSystem  = "system"
)

// ChatSession is one conversation thread between a visitor and staff.
// VisitorID is generated client-side and persisted in the browser so a
// returning visitor resumes their active session.
type ChatSession struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VisitorID     string    `gorm:"type:varchar(120);index;not null" json:"visitor_id"`
	VisitorName   *string   `gorm:"type:varchar(160)" json:"visitor_name"`
	VisitorEmail  *string   `gorm:"type:varchar(255)" json:"visitor_email"`
	VisitorPhone  *string   `gorm:"type:varchar(40)" json:"visitor_phone"`
	Status        string    `gorm:"type:varchar(20);not null;default:active;index" json:"status"`
	StartedAt     time.Time `gorm:"autoCreateTime" json:"started_at"`
	LastMessageAt time.Time `json:"last_message_at"`
}

func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ChatMessage is append-only per session. IsRead defaults false for
// visitor-authored messages so staff get an unread-inbox signal; admin and
// system messages are born read.
type ChatMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	SenderType string    `gorm:"type:varchar(20);not null" json:"sender_type"` // visitor, admin, system
	SenderName *string   `gorm:"type:varchar(160)" json:"sender_name"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
