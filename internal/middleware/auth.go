package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"backend/internal/model"
	"backend/internal/rbac"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const actorContextKey = "actor"

// Actor is the resolved identity and role for the current request. It lives
// only for the request that resolved it.
type Actor struct {
	ID    string
	Email string
	Role  rbac.Role
}

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// SetTokenCookies sets access_token and refresh_token as HttpOnly cookies
func SetTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	// Production (cross-origin): SameSiteNoneMode + Secure=true
	// Development (same-site):   SameSiteLaxMode  + Secure=false
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	// access_token: 24h, refresh_token: 7 days
	c.SetCookie("access_token", accessToken, 3600*24, "/", "", secure, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*7, "/", "", secure, true)
}

// ClearTokenCookies removes access_token and refresh_token cookies
func ClearTokenCookies(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
	c.SetCookie("refresh_token", "", -1, "/", "", secure, true)
}

// --- Identity resolution ---

// identityCacheEntry stores a resolved actor with TTL so each request does
// not hit the users table. Invalidated on role changes.
type identityCacheEntry struct {
	actor     Actor
	expiresAt time.Time
}

var (
	identityCache    sync.Map // userID -> identityCacheEntry
	identityCacheTTL = 5 * time.Minute
)

// identityDB holds the database reference for role lookups — set via Init
var identityDB *gorm.DB

// Init sets the DB reference used to resolve a token subject to its role.
func Init(db *gorm.DB) {
	identityDB = db
}

// ClearIdentityCache removes the cached identity for a user (or all users
// if id is empty). Called after role updates so the change takes effect on
// the user's next request.
func ClearIdentityCache(userID string) {
	if userID == "" {
		identityCache.Range(func(key, _ interface{}) bool {
			identityCache.Delete(key)
			return true
		})
	} else {
		identityCache.Delete(userID)
	}
}

var errNoIdentity = errors.New("no resolvable identity")

// resolveActor performs the two-step resolution: JWT subject first, then a
// fresh role lookup against the users table. Authentication and
// authorization stay decoupled so a role change takes effect without
// reissuing credentials.
func resolveActor(c *gin.Context) (Actor, error) {
	// Try cookie first, fallback to Authorization header
	tokenString, cookieErr := c.Cookie("access_token")
	if cookieErr != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return Actor{}, errNoIdentity
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Actor{}, errNoIdentity
		}
		tokenString = parts[1]
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return GetJWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return Actor{}, errNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, errNoIdentity
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return Actor{}, errNoIdentity
	}

	// Check cache
	if entry, ok := identityCache.Load(userID); ok {
		cached := entry.(identityCacheEntry)
		if time.Now().Before(cached.expiresAt) {
			return cached.actor, nil
		}
	}

	if identityDB == nil {
		return Actor{}, gorm.ErrInvalidDB
	}

	var user model.User
	if err := identityDB.First(&user, "id = ?", userID).Error; err != nil {
		// Account deleted or role record missing: no context.
		return Actor{}, errNoIdentity
	}

	actor := Actor{ID: user.ID.String(), Email: user.Email, Role: rbac.Role(user.Role)}
	identityCache.Store(userID, identityCacheEntry{
		actor:     actor,
		expiresAt: time.Now().Add(identityCacheTTL),
	})

	return actor, nil
}

// Resolve attempts identity resolution without gating the request, for
// flows like logout where a missing or expired token is acceptable.
func Resolve(c *gin.Context) (Actor, bool) {
	actor, err := resolveActor(c)
	return actor, err == nil
}

// ActorFromContext returns the actor resolved by RequireAuth/RequirePermission.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}

// RequireAuth resolves the acting identity without a permission check.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolveActor(c)
		if err != nil {
			abortResolveError(c, err)
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequirePermission is the single enforcement point: it resolves the acting
// identity and gates the request on the required permission. Handlers never
// check roles directly.
func RequirePermission(perm rbac.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolveActor(c)
		if err != nil {
			abortResolveError(c, err)
			return
		}

		if !rbac.HasPermission(actor.Role, perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(response.MsgForbidden))
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func abortResolveError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrInvalidDB) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Error(response.MsgUnavailable))
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
}
