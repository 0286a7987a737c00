package handler

import (
	"net/http"
	"testing"

	"backend/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatVisitorFlow(t *testing.T) {
	env := newTestEnv(t)

	// Anonymous visitor opens a session and gets the system welcome.
	rec := env.do(t, http.MethodPost, "/api/chat/sessions", "", map[string]interface{}{
		"visitorId": "widget-abc123",
		"name":      "Asha",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	body := decodeBody(t, rec)
	session := body["session"].(map[string]interface{})
	sessionID := session["id"].(string)
	assert.Equal(t, "active", session["status"])

	messages := body["messages"].([]interface{})
	require.Len(t, messages, 1)
	welcome := messages[0].(map[string]interface{})
	assert.Equal(t, "system", welcome["senderType"])
	assert.Contains(t, welcome["message"], "Asha")

	// Visitor sends a message.
	rec = env.do(t, http.MethodPost, "/api/chat/sessions/"+sessionID+"/messages", "", map[string]interface{}{
		"message": "Looking for a villa in Mykonos",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	message := decodeBody(t, rec)["message"].(map[string]interface{})
	assert.Equal(t, "visitor", message["senderType"])
	assert.Equal(t, false, message["isRead"])

	// Reopening with the same visitor id resumes the open session.
	rec = env.do(t, http.MethodPost, "/api/chat/sessions", "", map[string]interface{}{
		"visitorId": "widget-abc123",
		"name":      "Asha",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, sessionID, body["session"].(map[string]interface{})["id"])
	assert.Len(t, body["messages"], 2)
}

func TestChatStaffInbox(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/chat/sessions", "", map[string]interface{}{
		"visitorId": "widget-xyz",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionID := decodeBody(t, rec)["session"].(map[string]interface{})["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/chat/sessions/"+sessionID+"/messages", "", map[string]interface{}{
		"message": "Anyone there?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// The inbox is guarded.
	rec = env.do(t, http.MethodGet, "/api/admin/chat/sessions", "", nil)
	requireError(t, rec, http.StatusUnauthorized, response.MsgUnauthorized)

	rec = env.do(t, http.MethodGet, "/api/admin/chat/sessions", env.viewer.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessions := decodeBody(t, rec)["sessions"].([]interface{})
	require.Len(t, sessions, 1)
	assert.EqualValues(t, 1, sessions[0].(map[string]interface{})["unreadCount"])

	// Staff reply defaults the sender name to the actor email and is born
	// read.
	rec = env.do(t, http.MethodPost, "/api/admin/chat/sessions/"+sessionID+"/messages", env.viewer.token, map[string]interface{}{
		"message": "With you shortly",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	message := decodeBody(t, rec)["message"].(map[string]interface{})
	assert.Equal(t, "admin", message["senderType"])
	assert.Equal(t, env.viewer.email, message["senderName"])
	assert.Equal(t, true, message["isRead"])
}

func TestChatCloseSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/chat/sessions", "", map[string]interface{}{
		"visitorId": "widget-close",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionID := decodeBody(t, rec)["session"].(map[string]interface{})["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/chat/sessions/"+sessionID+"/messages", "", map[string]interface{}{
		"message": "Hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/admin/chat/sessions/"+sessionID+"/close", env.admin.token, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	session := decodeBody(t, rec)["session"].(map[string]interface{})
	assert.Equal(t, "closed", session["status"])
	assert.EqualValues(t, 0, session["unreadCount"], "closing marks the conversation read")

	// No more messages after close.
	rec = env.do(t, http.MethodPost, "/api/chat/sessions/"+sessionID+"/messages", "", map[string]interface{}{
		"message": "One more thing",
	})
	requireError(t, rec, http.StatusBadRequest, "session is closed")

	// A fresh widget handshake opens a new session instead of resuming the
	// closed one.
	rec = env.do(t, http.MethodPost, "/api/chat/sessions", "", map[string]interface{}{
		"visitorId": "widget-close",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, sessionID, decodeBody(t, rec)["session"].(map[string]interface{})["id"])
}
