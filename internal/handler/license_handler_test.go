package handler

import (
	"net/http"
	"testing"
	"time"

	"backend/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/admin/license", env.editor.token, nil)
	requireError(t, rec, http.StatusForbidden, response.MsgForbidden)

	rec = env.do(t, http.MethodPost, "/api/admin/license", env.editor.token, map[string]interface{}{
		"licensee": "X", "plan": "starter",
	})
	requireError(t, rec, http.StatusForbidden, response.MsgForbidden)
}

func TestLicenseLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// No license issued yet.
	rec := env.do(t, http.MethodGet, "/api/admin/license", env.admin.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)["status"].(map[string]interface{})
	assert.Equal(t, false, status["valid"])
	assert.Equal(t, "no license issued", status["reason"])

	rec = env.do(t, http.MethodPost, "/api/admin/license", env.admin.token, map[string]interface{}{
		"licensee":  "Aurelia Concierge Ltd",
		"plan":      "enterprise",
		"expiresAt": time.Now().Add(365 * 24 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	status = body["status"].(map[string]interface{})
	require.Equal(t, true, status["valid"])
	claims := status["claims"].(map[string]interface{})
	assert.Equal(t, "enterprise", claims["plan"])
	assert.Equal(t, "default", claims["tenant_id"])

	// Evaluate now reads the stored token back.
	rec = env.do(t, http.MethodGet, "/api/admin/license", env.admin.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, true, body["status"].(map[string]interface{})["valid"])
}

func TestLicenseIssueValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/license", env.admin.token, map[string]interface{}{
		"licensee": "X", "plan": "platinum",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/admin/license", env.admin.token, map[string]interface{}{
		"licensee": "X", "plan": "starter", "expiresAt": "yesterday",
	})
	requireError(t, rec, http.StatusBadRequest, "expiresAt must be an RFC3339 timestamp")

	rec = env.do(t, http.MethodPost, "/api/admin/license", env.admin.token, map[string]interface{}{
		"licensee":  "X",
		"plan":      "starter",
		"expiresAt": time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
	})
	requireError(t, rec, http.StatusBadRequest, "expiresAt must be in the future")
}
