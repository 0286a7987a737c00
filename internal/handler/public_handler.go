package handler

import (
	"net/http"

	"backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	publicService service.PublicService
}

func NewPublicHandler(publicService service.PublicService) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

func (h *PublicHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/content", h.GetContent)
}

// GetContent handles GET /api/content, the aggregated read model the
// marketing site renders from.
func (h *PublicHandler) GetContent(c *gin.Context) {
	content, err := h.publicService.Content(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}
