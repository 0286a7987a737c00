package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/audit"
	"backend/internal/database"
	"backend/internal/license"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testPassword = "correct-horse-battery"

type testUser struct {
	id    string
	email string
	token string
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	admin  testUser
	editor testUser
	viewer testUser
}

// newTestEnv boots the full router against a throwaway in-memory database
// with one seeded user per role.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	middleware.Init(db)
	t.Cleanup(func() { middleware.ClearIdentityCache("") })

	log := zap.NewNop()
	hub := ws.NewHub(nil, log)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	signer, err := license.NewSigner("")
	require.NoError(t, err)

	recorder := audit.NewRecorder(db, log)
	userService := service.NewUserService(db, middleware.GetJWTSecret())
	contentService := service.NewContentService(db)
	publicService := service.NewPublicService(db)
	themeService := service.NewThemeService(db)
	requestService := service.NewRequestService(db)
	chatService := service.NewChatService(db, hub)
	auditService := service.NewAuditService(db)
	backupService := service.NewBackupService(db)
	licenseService := service.NewLicenseService(db, signer)
	mediaService := service.NewMediaService(db, t.TempDir())

	router := gin.New()
	root := router.Group("")
	NewAuthHandler(userService, recorder).RegisterRoutes(root)
	NewUserHandler(userService, recorder).RegisterRoutes(root)
	NewContentHandler(contentService, recorder).RegisterRoutes(root)
	NewPublicHandler(publicService).RegisterRoutes(root)
	NewThemeHandler(themeService, recorder, "default").RegisterRoutes(root)
	NewRequestHandler(requestService, recorder).RegisterRoutes(root)
	NewChatHandler(chatService, hub).RegisterRoutes(root)
	NewAuditHandler(auditService).RegisterRoutes(root)
	NewBackupHandler(backupService).RegisterRoutes(root)
	NewLicenseHandler(licenseService, "default").RegisterRoutes(root)
	NewMediaHandler(mediaService, recorder).RegisterRoutes(root)

	env := &testEnv{db: db, router: router}
	env.admin = env.seedUser(t, "Admin", "admin@example.com", "admin")
	env.editor = env.seedUser(t, "Editor", "editor@example.com", "editor")
	env.viewer = env.seedUser(t, "Viewer", "viewer@example.com", "viewer")
	return env
}

func (e *testEnv) seedUser(t *testing.T, name, email, role string) testUser {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, e.db.Create(&user).Error)

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.GetJWTSecret())
	require.NoError(t, err)

	return testUser{id: user.ID.String(), email: user.Email, token: token}
}

// do performs one request against the test router. An empty token sends the
// request unauthenticated.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func (e *testEnv) auditCount(t *testing.T, action string) int64 {
	t.Helper()
	var count int64
	query := e.db.Model(&model.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}
	require.NoError(t, query.Count(&count).Error)
	return count
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	if message != "" {
		body := decodeBody(t, rec)
		require.Equal(t, message, body["error"])
	}
}
