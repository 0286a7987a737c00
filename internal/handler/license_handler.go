package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/rbac"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
)

type LicenseHandler struct {
	licenseService service.LicenseService
	tenantID       string
}

func NewLicenseHandler(licenseService service.LicenseService, tenantID string) *LicenseHandler {
	return &LicenseHandler{licenseService: licenseService, tenantID: tenantID}
}

func (h *LicenseHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/admin/license", middleware.RequirePermission(rbac.PermLicenseRead), h.Evaluate)
	router.POST("/api/admin/license", middleware.RequirePermission(rbac.PermLicenseWrite), h.Issue)
}

// Evaluate reports the tenant's current license state.
func (h *LicenseHandler) Evaluate(c *gin.Context) {
	res, err := h.licenseService.Evaluate(c.Request.Context(), h.tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Issue signs and stores a fresh license token for the tenant.
func (h *LicenseHandler) Issue(c *gin.Context) {
	var req service.IssueLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.licenseService.Issue(c.Request.Context(), h.tenantID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
