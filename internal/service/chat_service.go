package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type StartChatRequest struct {
	VisitorID string `json:"visitorId" binding:"required,max=120"`
	Name      string `json:"name" binding:"max=160"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=40"`
}

type SendChatMessageRequest struct {
	Message    string `json:"message" binding:"required,max=4000"`
	SenderName string `json:"senderName" binding:"max=160"`
}

type ChatMessageResponse struct {
	ID         string  `json:"id"`
	SessionID  string  `json:"sessionId"`
	SenderType string  `json:"senderType"`
	SenderName *string `json:"senderName"`
	Message    string  `json:"message"`
	IsRead     bool    `json:"isRead"`
	CreatedAt  string  `json:"createdAt"`
}

type ChatSessionResponse struct {
	ID            string  `json:"id"`
	VisitorID     string  `json:"visitorId"`
	VisitorName   *string `json:"visitorName"`
	VisitorEmail  *string `json:"visitorEmail"`
	VisitorPhone  *string `json:"visitorPhone"`
	Status        string  `json:"status"`
	StartedAt     string  `json:"startedAt"`
	LastMessageAt string  `json:"lastMessageAt"`
	UnreadCount   int64   `json:"unreadCount"`
}

// --- Interface ---

// ChatService owns visitor/staff conversations. Visitor entry points carry
// no RBAC (visitors are anonymous); staff entry points sit behind the
// permission guard at the route level.
type ChatService interface {
	StartSession(ctx context.Context, req StartChatRequest) (*ChatSessionResponse, []ChatMessageResponse, error)
	ListMessages(ctx context.Context, sessionID string) ([]ChatMessageResponse, error)
	SendVisitorMessage(ctx context.Context, sessionID string, req SendChatMessageRequest) (*ChatMessageResponse, error)
	SendAdminMessage(ctx context.Context, sessionID string, req SendChatMessageRequest) (*ChatMessageResponse, error)
	ListSessions(ctx context.Context) ([]ChatSessionResponse, error)
	CloseSession(ctx context.Context, sessionID string) (*ChatSessionResponse, error)
}

type chatService struct {
	db  *gorm.DB
	hub *ws.Hub
}

func NewChatService(db *gorm.DB, hub *ws.Hub) ChatService {
	return &chatService{db: db, hub: hub}
}

// --- Implementation ---

// StartSession resumes the visitor's open session when one exists,
// otherwise creates a new session plus a system welcome message.
func (s *chatService) StartSession(ctx context.Context, req StartChatRequest) (*ChatSessionResponse, []ChatMessageResponse, error) {
	var existing model.ChatSession
	err := s.db.WithContext(ctx).
		Where("visitor_id = ? AND status IN ?", req.VisitorID, []string{model.ChatStatusActive, model.ChatStatusWaiting}).
		Order("started_at DESC").
		First(&existing).Error
	if err == nil {
		messages, merr := s.ListMessages(ctx, existing.ID.String())
		if merr != nil {
			return nil, nil, merr
		}
		res, rerr := s.sessionResponse(ctx, existing)
		return res, messages, rerr
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("failed to look up session: %w", err)
	}

	now := time.Now()
	session := model.ChatSession{
		VisitorID:     req.VisitorID,
		VisitorName:   optional(req.Name),
		VisitorEmail:  optional(req.Email),
		VisitorPhone:  optional(req.Phone),
		Status:        model.ChatStatusActive,
		LastMessageAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	welcome := model.ChatMessage{
		SessionID:  session.ID,
		SenderType: model.SenderSystem,
		Message:    welcomeMessage(req.Name),
		IsRead:     true,
	}
	if err := s.db.WithContext(ctx).Create(&welcome).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create welcome message: %w", err)
	}

	s.hub.Publish(ws.Event{Type: "session.created", SessionID: session.ID.String(), Payload: toChatMessageResponse(welcome)})

	res, err := s.sessionResponse(ctx, session)
	if err != nil {
		return nil, nil, err
	}
	return res, []ChatMessageResponse{*toChatMessageResponse(welcome)}, nil
}

func welcomeMessage(name string) string {
	if name == "" {
		return "Welcome. A member of our concierge team will be with you shortly."
	}
	return fmt.Sprintf("Welcome, %s. A member of our concierge team will be with you shortly.", name)
}

func (s *chatService) ListMessages(ctx context.Context, sessionID string) ([]ChatMessageResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, validationf("invalid session id")
	}

	var rows []model.ChatMessage
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", id).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	res := make([]ChatMessageResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, *toChatMessageResponse(r))
	}
	return res, nil
}

func (s *chatService) SendVisitorMessage(ctx context.Context, sessionID string, req SendChatMessageRequest) (*ChatMessageResponse, error) {
	return s.appendMessage(ctx, sessionID, model.SenderVisitor, req)
}

// SendAdminMessage appends a staff reply; admin-authored messages are born
// read so they never count toward the staff unread signal.
func (s *chatService) SendAdminMessage(ctx context.Context, sessionID string, req SendChatMessageRequest) (*ChatMessageResponse, error) {
	return s.appendMessage(ctx, sessionID, model.SenderAdmin, req)
}

func (s *chatService) appendMessage(ctx context.Context, sessionID, senderType string, req SendChatMessageRequest) (*ChatMessageResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, validationf("invalid session id")
	}

	var session model.ChatSession
	if err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("session not found")
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	if session.Status == model.ChatStatusClosed {
		return nil, validationf("session is closed")
	}

	message := model.ChatMessage{
		SessionID:  session.ID,
		SenderType: senderType,
		SenderName: optional(req.SenderName),
		Message:    req.Message,
		IsRead:     senderType != model.SenderVisitor,
	}
	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	// A visitor message leaves the session waiting for staff; a staff
	// reply picks it back up.
	updates := map[string]interface{}{"last_message_at": message.CreatedAt}
	switch {
	case senderType == model.SenderVisitor && session.Status == model.ChatStatusActive:
		updates["status"] = model.ChatStatusWaiting
	case senderType == model.SenderAdmin && session.Status == model.ChatStatusWaiting:
		updates["status"] = model.ChatStatusActive
	}
	session.LastMessageAt = message.CreatedAt
	if err := s.db.WithContext(ctx).Model(&session).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	res := toChatMessageResponse(message)
	s.hub.Publish(ws.Event{Type: "message.created", SessionID: session.ID.String(), Payload: res})
	return res, nil
}

func (s *chatService) ListSessions(ctx context.Context) ([]ChatSessionResponse, error) {
	var rows []model.ChatSession
	if err := s.db.WithContext(ctx).Order("last_message_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	res := make([]ChatSessionResponse, 0, len(rows))
	for _, r := range rows {
		session, err := s.sessionResponse(ctx, r)
		if err != nil {
			return nil, err
		}
		res = append(res, *session)
	}
	return res, nil
}

func (s *chatService) CloseSession(ctx context.Context, sessionID string) (*ChatSessionResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, validationf("invalid session id")
	}

	var session model.ChatSession
	if err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("session not found")
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	session.Status = model.ChatStatusClosed
	if err := s.db.WithContext(ctx).Model(&session).Update("status", model.ChatStatusClosed).Error; err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	// Mark the conversation handled.
	if err := s.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("session_id = ? AND is_read = ?", id, false).
		Update("is_read", true).Error; err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}

	s.hub.Publish(ws.Event{Type: "session.closed", SessionID: session.ID.String()})
	return s.sessionResponse(ctx, session)
}

// sessionResponse attaches the derived unread count: is_read scans, not a
// stored counter.
func (s *chatService) sessionResponse(ctx context.Context, session model.ChatSession) (*ChatSessionResponse, error) {
	var unread int64
	if err := s.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("session_id = ? AND is_read = ?", session.ID, false).
		Count(&unread).Error; err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return &ChatSessionResponse{
		ID:            session.ID.String(),
		VisitorID:     session.VisitorID,
		VisitorName:   session.VisitorName,
		VisitorEmail:  session.VisitorEmail,
		VisitorPhone:  session.VisitorPhone,
		Status:        session.Status,
		StartedAt:     formatTime(session.StartedAt),
		LastMessageAt: formatTime(session.LastMessageAt),
		UnreadCount:   unread,
	}, nil
}

func toChatMessageResponse(m model.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:         m.ID.String(),
		SessionID:  m.SessionID.String(),
		SenderType: m.SenderType,
		SenderName: m.SenderName,
		Message:    m.Message,
		IsRead:     m.IsRead,
		CreatedAt:  formatTime(m.CreatedAt),
	}
}
