package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/database"
	"backend/internal/model"
	"backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string) model.User {
	t.Helper()
	user := model.User{Name: "T", Email: role + "@example.com", Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(GetJWTSecret())
	require.NoError(t, err)
	return token
}

func guardedRouter(perm rbac.Permission) *gin.Engine {
	router := gin.New()
	router.GET("/guarded", RequirePermission(perm), func(c *gin.Context) {
		actor, _ := ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": actor.Email, "role": string(actor.Role)})
	})
	return router
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequirePermission(t *testing.T) {
	db := newTestDB(t)
	Init(db)
	t.Cleanup(func() { ClearIdentityCache("") })

	editor := seedUser(t, db, "editor")
	router := guardedRouter(rbac.PermContentWrite)

	rec := get(router, signToken(t, editor.ID.String()))
	assert.Equal(t, http.StatusOK, rec.Code)

	viewer := seedUser(t, db, "viewer")
	rec = get(router, signToken(t, viewer.ID.String()))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = get(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(router, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Token subject with no matching account resolves to nothing.
	rec = get(router, signToken(t, uuid.NewString()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResolveUnavailableDatabase(t *testing.T) {
	db := newTestDB(t)
	editor := seedUser(t, db, "editor")
	token := signToken(t, editor.ID.String())

	Init(nil)
	t.Cleanup(func() { ClearIdentityCache("") })

	// Credentials are fine; identity resolution is not possible. The
	// response distinguishes outage from bad credentials.
	rec := get(guardedRouter(rbac.PermContentWrite), token)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Service unavailable")
}

func TestIdentityCacheInvalidation(t *testing.T) {
	db := newTestDB(t)
	Init(db)
	t.Cleanup(func() { ClearIdentityCache("") })

	user := seedUser(t, db, "viewer")
	token := signToken(t, user.ID.String())
	router := guardedRouter(rbac.PermContentWrite)

	rec := get(router, token)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// A direct role change is invisible while the cached identity lives.
	require.NoError(t, db.Model(&user).Update("role", "editor").Error)
	rec = get(router, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Dropping the cache entry makes the new role effective immediately.
	ClearIdentityCache(user.ID.String())
	rec = get(router, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
