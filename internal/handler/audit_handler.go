package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/rbac"
	"backend/internal/service"
	"backend/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/admin/audit-logs")
	group.Use(middleware.RequirePermission(rbac.PermAuditRead))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs handles GET /api/admin/audit-logs, paging newest-first
// through the most recent 200 entries.
// @Summary      Get audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  map[string]interface{}
// @Router       /api/admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	q := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"auditLogs": logs,
		"total":     total,
		"page":      q.Page,
		"limit":     q.Limit,
	})
}
