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

type MediaHandler struct {
	mediaService service.MediaService
	recorder     *audit.Recorder
}

func NewMediaHandler(mediaService service.MediaService, recorder *audit.Recorder) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, recorder: recorder}
}

func (h *MediaHandler) RegisterRoutes(router *gin.RouterGroup) {
	media := router.Group("/api/admin/media")
	{
		media.GET("", middleware.RequirePermission(rbac.PermContentRead), h.ListMedia)
		media.POST("", middleware.RequirePermission(rbac.PermContentWrite), h.UploadMedia)
		media.DELETE("/:id", middleware.RequirePermission(rbac.PermContentWrite), h.DeleteMedia)
	}
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	list, err := h.mediaService.ListMedia(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("media", list))
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("a 'file' form field is required"))
		return
	}

	actorID := ""
	if actor, ok := middleware.ActorFromContext(c); ok {
		actorID = actor.ID
	}

	list, err := h.mediaService.UploadMedia(c.Request.Context(), header, actorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "media_files", map[string]interface{}{"fileName": header.Filename})
	c.JSON(http.StatusOK, response.Collection("media", list))
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id := c.Param("id")
	list, deleted, err := h.mediaService.DeleteMedia(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if deleted {
		h.recorder.Record(c, model.ActionContentDelete, "media_files", map[string]interface{}{"id": id})
	}
	c.JSON(http.StatusOK, response.Collection("media", list))
}
