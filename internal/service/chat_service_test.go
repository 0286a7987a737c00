package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/database"
	"backend/internal/model"
	"backend/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newChatService(t *testing.T) (ChatService, *gorm.DB) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hub := ws.NewHub(nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	return NewChatService(db, hub), db
}

func TestStartSessionWelcome(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()

	session, messages, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1", Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, model.ChatStatusActive, session.Status)
	assert.EqualValues(t, 0, session.UnreadCount, "the system welcome is born read")

	require.Len(t, messages, 1)
	assert.Equal(t, model.SenderSystem, messages[0].SenderType)
	assert.Contains(t, messages[0].Message, "Asha")
	assert.True(t, messages[0].IsRead)

	// Without a name the greeting stays generic.
	_, anon, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-2"})
	require.NoError(t, err)
	assert.NotContains(t, anon[0].Message, ",")
}

func TestStartSessionResumesOpenSession(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()

	first, _, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1", Name: "Asha"})
	require.NoError(t, err)

	_, err = svc.SendVisitorMessage(ctx, first.ID, SendChatMessageRequest{Message: "Hello"})
	require.NoError(t, err)

	resumed, messages, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1", Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, resumed.ID)
	assert.Len(t, messages, 2, "resume returns the existing transcript")

	// A different visitor never resumes someone else's session.
	other, _, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-9"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestVisitorMessageLeavesSessionWaiting(t *testing.T) {
	svc, db := newChatService(t)
	ctx := context.Background()

	session, _, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1"})
	require.NoError(t, err)

	_, err = svc.SendVisitorMessage(ctx, session.ID, SendChatMessageRequest{Message: "Anyone there?"})
	require.NoError(t, err)

	var row model.ChatSession
	require.NoError(t, db.First(&row, "id = ?", session.ID).Error)
	assert.Equal(t, model.ChatStatusWaiting, row.Status)

	// A staff reply picks the conversation back up.
	_, err = svc.SendAdminMessage(ctx, session.ID, SendChatMessageRequest{Message: "With you now", SenderName: "Concierge"})
	require.NoError(t, err)

	require.NoError(t, db.First(&row, "id = ?", session.ID).Error)
	assert.Equal(t, model.ChatStatusActive, row.Status)

	// Waiting sessions still resume for the same visitor.
	_, err = svc.SendVisitorMessage(ctx, session.ID, SendChatMessageRequest{Message: "Thanks"})
	require.NoError(t, err)
	resumed, _, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1"})
	require.NoError(t, err)
	assert.Equal(t, session.ID, resumed.ID)
}

func TestUnreadCountTracksVisitorMessages(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()

	session, _, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.SendVisitorMessage(ctx, session.ID, SendChatMessageRequest{Message: "ping"})
		require.NoError(t, err)
	}
	_, err = svc.SendAdminMessage(ctx, session.ID, SendChatMessageRequest{Message: "pong", SenderName: "Concierge"})
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.EqualValues(t, 2, sessions[0].UnreadCount, "staff replies never count as unread")
}

func TestSendMessageBumpsLastMessageAt(t *testing.T) {
	svc, db := newChatService(t)
	ctx := context.Background()

	session, _, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1"})
	require.NoError(t, err)

	sent, err := svc.SendVisitorMessage(ctx, session.ID, SendChatMessageRequest{Message: "Hello"})
	require.NoError(t, err)

	var row model.ChatSession
	require.NoError(t, db.First(&row, "id = ?", session.ID).Error)
	assert.Equal(t, sent.CreatedAt, row.LastMessageAt.UTC().Format(time.RFC3339))
}

func TestCloseSession(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()

	session, _, err := svc.StartSession(ctx, StartChatRequest{VisitorID: "v-1"})
	require.NoError(t, err)
	_, err = svc.SendVisitorMessage(ctx, session.ID, SendChatMessageRequest{Message: "Hello"})
	require.NoError(t, err)

	closed, err := svc.CloseSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ChatStatusClosed, closed.Status)
	assert.EqualValues(t, 0, closed.UnreadCount)

	_, err = svc.SendVisitorMessage(ctx, session.ID, SendChatMessageRequest{Message: "More"})
	require.Error(t, err)
	var verr ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.SendAdminMessage(ctx, session.ID, SendChatMessageRequest{Message: "More"})
	require.Error(t, err)
}

func TestChatInvalidSessionIDs(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()

	_, err := svc.ListMessages(ctx, "nope")
	assert.Error(t, err)

	_, err = svc.SendVisitorMessage(ctx, uuid.NewString(), SendChatMessageRequest{Message: "hi"})
	require.Error(t, err)
	var verr ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "session not found", verr.Error())
}
