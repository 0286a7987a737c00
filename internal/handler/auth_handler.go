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

type AuthHandler struct {
	userService service.UserService
	recorder    *audit.Recorder
}

func NewAuthHandler(userService service.UserService, recorder *audit.Recorder) *AuthHandler {
	return &AuthHandler{userService: userService, recorder: recorder}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.Refresh)
	}

	router.GET("/api/me", middleware.RequireAuth(), h.Me)
}

// Login handles POST /api/auth/login
// @Summary      Login
// @Description  Authenticates a staff member by email and password, setting HttpOnly token cookies
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  service.TokenResponse
// @Failure      401      {object}  response.ErrorBody
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tokens, user, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
		return
	}

	middleware.SetTokenCookies(c, tokens.Token, tokens.RefreshToken)

	// Login has no guarded actor context yet; stamp the actor explicitly.
	h.recorder.RecordAs(c, user.ID, user.Email, model.ActionAuthLogin, "users", nil)

	c.JSON(http.StatusOK, gin.H{
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
		"user":         user,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie("refresh_token")
	if refreshToken == "" {
		var req service.RefreshTokenRequest
		_ = c.ShouldBindJSON(&req)
		refreshToken = req.RefreshToken
	}

	if err := h.userService.Logout(c.Request.Context(), refreshToken); err != nil {
		respondServiceError(c, err)
		return
	}

	if actor, ok := h.resolveQuietly(c); ok {
		h.recorder.RecordAs(c, actor.ID, actor.Email, model.ActionAuthLogout, "users", nil)
	}

	middleware.ClearTokenCookies(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie("refresh_token")
	if refreshToken == "" {
		var req service.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		refreshToken = req.RefreshToken
	}

	tokens, err := h.userService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
		return
	}

	middleware.SetTokenCookies(c, tokens.Token, tokens.RefreshToken)
	c.JSON(http.StatusOK, tokens)
}

// Me handles GET /api/me, returning the resolved actor and its permission
// set for the admin UI's page-level guards.
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), actor.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"permissions": rbac.PermissionsFor(actor.Role),
	})
}

// resolveQuietly best-efforts an actor for logout auditing without failing
// the request when the access token is already gone.
func (h *AuthHandler) resolveQuietly(c *gin.Context) (middleware.Actor, bool) {
	if actor, ok := middleware.ActorFromContext(c); ok {
		return actor, true
	}
	return middleware.Resolve(c)
}
