package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/rbac"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	backupService service.BackupService
}

func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (h *BackupHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/admin/backups", middleware.RequirePermission(rbac.PermBackupsRead), h.Download)
}

// Download streams the full JSON snapshot as a timestamped file download.
func (h *BackupHandler) Download(c *gin.Context) {
	doc, filename, err := h.backupService.Snapshot(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, doc)
}
