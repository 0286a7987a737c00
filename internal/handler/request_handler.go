package handler

import (
	"net/http"

	"backend/internal/audit"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/rbac"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
	recorder       *audit.Recorder
}

func NewRequestHandler(requestService service.RequestService, recorder *audit.Recorder) *RequestHandler {
	return &RequestHandler{requestService: requestService, recorder: recorder}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public lead intake
	router.POST("/api/requests", h.CreateRequest)

	admin := router.Group("/api/admin/requests")
	admin.Use(middleware.RequirePermission(rbac.PermRequestsRead))
	{
		admin.GET("", h.ListRequests)
		admin.PUT("/:id/status", h.UpdateRequestStatus)
	}
}

// CreateRequest handles the public concierge form. The visitor is
// anonymous, so the audit entry carries no actor.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.requestService.CreateRequest(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "concierge_requests", map[string]interface{}{"id": created.ID})
	c.JSON(http.StatusOK, gin.H{"request": created})
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	list, err := h.requestService.ListRequests(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("requests", list))
}

func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	var req service.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.requestService.UpdateRequestStatus(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentUpdate, "concierge_requests", map[string]interface{}{"id": id, "status": req.Status})
	c.JSON(http.StatusOK, response.Collection("requests", list))
}
