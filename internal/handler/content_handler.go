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

// ContentHandler exposes the five CMS collections under /api/admin. Every
// mutation runs the same path: permission guard on the route, binding
// validation, one persistence write, audit append, full refreshed
// collection back.
type ContentHandler struct {
	contentService service.ContentService
	recorder       *audit.Recorder
}

func NewContentHandler(contentService service.ContentService, recorder *audit.Recorder) *ContentHandler {
	return &ContentHandler{contentService: contentService, recorder: recorder}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api/admin")

	read := middleware.RequirePermission(rbac.PermContentRead)
	write := middleware.RequirePermission(rbac.PermContentWrite)

	admin.GET("/services", read, h.ListServices)
	admin.POST("/services", write, h.CreateService)
	admin.PUT("/services/:id", write, h.UpdateService)
	admin.DELETE("/services/:id", write, h.DeleteService)

	admin.GET("/destinations", read, h.ListDestinations)
	admin.POST("/destinations", write, h.CreateDestination)
	admin.PUT("/destinations/:id", write, h.UpdateDestination)
	admin.DELETE("/destinations/:id", write, h.DeleteDestination)

	admin.GET("/banners", read, h.ListBanners)
	admin.POST("/banners", write, h.CreateBanner)
	admin.PUT("/banners/:id", write, h.UpdateBanner)
	admin.DELETE("/banners/:id", write, h.DeleteBanner)

	admin.GET("/sections", read, h.ListSections)
	admin.POST("/sections", write, h.CreateSection)
	admin.PUT("/sections/:id", write, h.UpdateSection)
	admin.DELETE("/sections/:id", write, h.DeleteSection)

	admin.GET("/pages", read, h.ListPages)
	admin.POST("/pages", write, h.CreatePage)
	admin.PUT("/pages/:id", write, h.UpdatePage)
	admin.DELETE("/pages/:id", write, h.DeletePage)
}

// --- Services ---

func (h *ContentHandler) ListServices(c *gin.Context) {
	list, err := h.contentService.ListServices(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("services", list))
}

// CreateService handles POST /api/admin/services
// @Summary      Create a service
// @Tags         content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ServiceRequest  true  "Service"
// @Success      200      {object}  map[string][]service.ServiceResponse
// @Failure      400      {object}  response.ErrorBody
// @Router       /api/admin/services [post]
func (h *ContentHandler) CreateService(c *gin.Context) {
	var req service.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.contentService.CreateService(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "services", map[string]interface{}{"slug": req.Slug})
	c.JSON(http.StatusOK, response.Collection("services", list))
}

func (h *ContentHandler) UpdateService(c *gin.Context) {
	var req service.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.contentService.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentUpdate, "services", map[string]interface{}{"id": id})
	c.JSON(http.StatusOK, response.Collection("services", list))
}

func (h *ContentHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	list, deleted, err := h.contentService.DeleteService(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if deleted {
		h.recorder.Record(c, model.ActionContentDelete, "services", map[string]interface{}{"id": id})
	}
	c.JSON(http.StatusOK, response.Collection("services", list))
}

// --- Destinations ---

func (h *ContentHandler) ListDestinations(c *gin.Context) {
	list, err := h.contentService.ListDestinations(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("destinations", list))
}

func (h *ContentHandler) CreateDestination(c *gin.Context) {
	var req service.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.contentService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "destinations", map[string]interface{}{"slug": req.Slug})
	c.JSON(http.StatusOK, response.Collection("destinations", list))
}

func (h *ContentHandler) UpdateDestination(c *gin.Context) {
	var req service.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.contentService.UpdateDestination(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentUpdate, "destinations", map[string]interface{}{"id": id})
	c.JSON(http.StatusOK, response.Collection("destinations", list))
}

func (h *ContentHandler) DeleteDestination(c *gin.Context) {
	id := c.Param("id")
	list, deleted, err := h.contentService.DeleteDestination(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if deleted {
		h.recorder.Record(c, model.ActionContentDelete, "destinations", map[string]interface{}{"id": id})
	}
	c.JSON(http.StatusOK, response.Collection("destinations", list))
}

// --- Banners ---

func (h *ContentHandler) ListBanners(c *gin.Context) {
	list, err := h.contentService.ListBanners(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("banners", list))
}

func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var req service.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.contentService.CreateBanner(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "banners", map[string]interface{}{"slug": req.Slug})
	c.JSON(http.StatusOK, response.Collection("banners", list))
}

func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	var req service.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.contentService.UpdateBanner(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentUpdate, "banners", map[string]interface{}{"id": id})
	c.JSON(http.StatusOK, response.Collection("banners", list))
}

func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	id := c.Param("id")
	list, deleted, err := h.contentService.DeleteBanner(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if deleted {
		h.recorder.Record(c, model.ActionContentDelete, "banners", map[string]interface{}{"id": id})
	}
	c.JSON(http.StatusOK, response.Collection("banners", list))
}

// --- Sections ---

func (h *ContentHandler) ListSections(c *gin.Context) {
	list, err := h.contentService.ListSections(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("sections", list))
}

func (h *ContentHandler) CreateSection(c *gin.Context) {
	var req service.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.contentService.CreateSection(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "sections", map[string]interface{}{"slug": req.Slug})
	c.JSON(http.StatusOK, response.Collection("sections", list))
}

func (h *ContentHandler) UpdateSection(c *gin.Context) {
	var req service.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.contentService.UpdateSection(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentUpdate, "sections", map[string]interface{}{"id": id})
	c.JSON(http.StatusOK, response.Collection("sections", list))
}

func (h *ContentHandler) DeleteSection(c *gin.Context) {
	id := c.Param("id")
	list, deleted, err := h.contentService.DeleteSection(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if deleted {
		h.recorder.Record(c, model.ActionContentDelete, "sections", map[string]interface{}{"id": id})
	}
	c.JSON(http.StatusOK, response.Collection("sections", list))
}

// --- Pages ---

func (h *ContentHandler) ListPages(c *gin.Context) {
	list, err := h.contentService.ListPages(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("pages", list))
}

func (h *ContentHandler) CreatePage(c *gin.Context) {
	var req service.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.contentService.CreatePage(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "pages", map[string]interface{}{"slug": req.Slug})
	c.JSON(http.StatusOK, response.Collection("pages", list))
}

func (h *ContentHandler) UpdatePage(c *gin.Context) {
	var req service.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.contentService.UpdatePage(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentUpdate, "pages", map[string]interface{}{"id": id})
	c.JSON(http.StatusOK, response.Collection("pages", list))
}

func (h *ContentHandler) DeletePage(c *gin.Context) {
	id := c.Param("id")
	list, deleted, err := h.contentService.DeletePage(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if deleted {
		h.recorder.Record(c, model.ActionContentDelete, "pages", map[string]interface{}{"id": id})
	}
	c.JSON(http.StatusOK, response.Collection("pages", list))
}
