package handler

import (
	"net/http"
	"testing"

	"backend/internal/model"
	"backend/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicRequestIntake(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/requests", "", map[string]interface{}{
		"name":        "Asha Verma",
		"email":       "asha@example.com",
		"destination": "Maldives",
		"budget":      "25000",
		"message":     "Two weeks in March",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	body := decodeBody(t, rec)
	created := body["request"].(map[string]interface{})
	assert.Equal(t, "new", created["status"])
	assert.Equal(t, "25000.00", created["budget"])

	// Anonymous submissions audit with no actor.
	var entry model.AuditLog
	require.NoError(t, env.db.Where("resource = ?", "concierge_requests").First(&entry).Error)
	assert.Nil(t, entry.ActorID)

	rec = env.do(t, http.MethodPost, "/api/requests", "", map[string]interface{}{
		"name":   "Bad Budget",
		"email":  "b@example.com",
		"budget": "lots",
	})
	requireError(t, rec, http.StatusBadRequest, "budget must be a decimal amount")

	rec = env.do(t, http.MethodPost, "/api/requests", "", map[string]interface{}{
		"name": "No Email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestInboxGuards(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/admin/requests", "", nil)
	requireError(t, rec, http.StatusUnauthorized, response.MsgUnauthorized)

	// Viewer holds requests:read.
	rec = env.do(t, http.MethodGet, "/api/admin/requests", env.viewer.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestStatusTransitions(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/requests", "", map[string]interface{}{
		"name":  "Asha Verma",
		"email": "asha@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	id := decodeBody(t, rec)["request"].(map[string]interface{})["id"].(string)

	rec = env.do(t, http.MethodPut, "/api/admin/requests/"+id+"/status", env.viewer.token, map[string]interface{}{
		"status": "contacted",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	rows := decodeBody(t, rec)["requests"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "contacted", rows[0].(map[string]interface{})["status"])

	// Unknown status fails binding.
	rec = env.do(t, http.MethodPut, "/api/admin/requests/"+id+"/status", env.viewer.token, map[string]interface{}{
		"status": "archived",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
