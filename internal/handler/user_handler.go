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

type UserHandler struct {
	userService service.UserService
	recorder    *audit.Recorder
}

func NewUserHandler(userService service.UserService, recorder *audit.Recorder) *UserHandler {
	return &UserHandler{userService: userService, recorder: recorder}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/api/admin/users")
	{
		users.GET("", middleware.RequirePermission(rbac.PermUsersRead), h.ListUsers)
		users.POST("", middleware.RequirePermission(rbac.PermUsersWrite), h.CreateUser)
		users.PUT("/:id/role", middleware.RequirePermission(rbac.PermUsersWrite), h.UpdateUserRole)
	}
}

// ListUsers handles GET /api/admin/users
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string][]service.UserResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	list, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Collection("users", list))
}

// CreateUser handles POST /api/admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.recorder.Record(c, model.ActionContentCreate, "users", map[string]interface{}{"email": req.Email, "role": req.Role})
	c.JSON(http.StatusOK, response.Collection("users", list))
}

// UpdateUserRole handles PUT /api/admin/users/:id/role. After the write the
// target user's cached identity is dropped so the new role applies to their
// next request.
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req service.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.userService.UpdateUserRole(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.ClearIdentityCache(id)
	h.recorder.Record(c, model.ActionUserRoleUpdate, "users", map[string]interface{}{"id": id, "role": req.Role})
	c.JSON(http.StatusOK, response.Collection("users", list))
}
