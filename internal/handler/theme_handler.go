package handler

import (
	"net/http"

	"backend/internal/audit"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/rbac"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeService service.ThemeService
	recorder     *audit.Recorder
	tenantID     string
}

func NewThemeHandler(themeService service.ThemeService, recorder *audit.Recorder, tenantID string) *ThemeHandler {
	return &ThemeHandler{themeService: themeService, recorder: recorder, tenantID: tenantID}
}

func (h *ThemeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/admin/themes", middleware.RequirePermission(rbac.PermThemeRead), h.GetTheme)
	router.PUT("/api/admin/themes", middleware.RequirePermission(rbac.PermThemeWrite), h.UpdateTheme)
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	res, err := h.themeService.GetTheme(c.Request.Context(), h.tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	var req service.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.themeService.UpdateTheme(c.Request.Context(), h.tenantID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionThemeUpdate, "theme_configs", map[string]interface{}{"tenantId": h.tenantID})
	c.JSON(http.StatusOK, res)
}
