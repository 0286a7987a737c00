package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/rbac"
	"backend/internal/service"
	"backend/internal/ws"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the visitor widget endpoints (public, anonymous) and
// the staff inbox endpoints (guarded). Both share the same session/message
// persistence.
type ChatHandler struct {
	chatService service.ChatService
	hub         *ws.Hub
}

func NewChatHandler(chatService service.ChatService, hub *ws.Hub) *ChatHandler {
	return &ChatHandler{chatService: chatService, hub: hub}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Visitor endpoints — no RBAC, visitors are anonymous.
	chat := router.Group("/api/chat")
	{
		chat.POST("/sessions", h.StartSession)
		chat.GET("/sessions/:id/messages", h.ListMessages)
		chat.POST("/sessions/:id/messages", h.SendVisitorMessage)
	}
	router.GET("/ws/chat", func(c *gin.Context) {
		ws.ServeVisitor(h.hub, c)
	})

	staffRead := middleware.RequirePermission(rbac.PermRequestsRead)
	admin := router.Group("/api/admin/chat")
	admin.Use(staffRead)
	{
		admin.GET("/sessions", h.ListSessions)
		admin.POST("/sessions/:id/messages", h.SendAdminMessage)
		admin.PUT("/sessions/:id/close", h.CloseSession)
	}
	router.GET("/ws/admin/chat", staffRead, func(c *gin.Context) {
		ws.ServeAdmin(h.hub, c)
	})
}

// StartSession resumes the visitor's active session or opens a new one
// with a system welcome message.
func (h *ChatHandler) StartSession(c *gin.Context) {
	var req service.StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, messages, err := h.chatService.StartSession(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "messages": messages})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("messages", messages))
}

func (h *ChatHandler) SendVisitorMessage(c *gin.Context) {
	var req service.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	message, err := h.chatService.SendVisitorMessage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.chatService.ListSessions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("sessions", sessions))
}

// SendAdminMessage appends a staff reply. The sender name defaults to the
// acting staff member's email when the client omits one.
func (h *ChatHandler) SendAdminMessage(c *gin.Context) {
	var req service.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.SenderName == "" {
		if actor, ok := middleware.ActorFromContext(c); ok {
			req.SenderName = actor.Email
		}
	}

	message, err := h.chatService.SendAdminMessage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *ChatHandler) CloseSession(c *gin.Context) {
	session, err := h.chatService.CloseSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}
