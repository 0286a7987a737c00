package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisChannel = "chat.events"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The widget is embedded on the marketing site; origin filtering happens
	// at the CDN/proxy layer.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the wire payload pushed to chat subscribers. Consumers
// de-duplicate by message id and sort by createdAt; delivery is
// at-least-once and unordered.
type Event struct {
	Type      string      `json:"type"` // message.created, session.created, session.closed
	SessionID string      `json:"sessionId"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Client represents a single connected WebSocket subscriber. A client is
// either scoped to one chat session (visitor widget) or a firehose
// subscriber receiving every session's events (admin panel).
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID uuid.UUID
	firehose  bool
}

// Hub maintains the set of active clients and fans events out to the
// clients subscribed to the event's session.
type Hub struct {
	clients    map[*Client]bool
	publish    chan envelope
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex

	rdb *redis.Client
	log *zap.Logger
}

type envelope struct {
	sessionID uuid.UUID
	data      []byte
}

// NewHub initializes the hub. rdb may be nil; when set, events are routed
// through a Redis pub/sub channel so every instance sees every event.
func NewHub(rdb *redis.Client, log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		publish:    make(chan envelope, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		log:        log,
	}
}

// Publish fans the event out to the session's subscribers and the admin
// firehose. With Redis configured the event takes the pub/sub round trip so
// other instances deliver it too.
func (h *Hub) Publish(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("chat event marshal failed", zap.Error(err))
		return
	}

	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), redisChannel, data).Err(); err != nil {
			h.log.Warn("redis publish failed, delivering locally", zap.Error(err))
		} else {
			return // local delivery happens via the subscriber loop
		}
	}

	h.deliver(ev.SessionID, data)
}

func (h *Hub) deliver(sessionID string, data []byte) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		id = uuid.Nil
	}
	h.publish <- envelope{sessionID: id, data: data}
}

// Run starts the dispatch loop and, when Redis is configured, the pub/sub
// subscriber feeding it.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
		case env := <-h.publish:
			h.mu.Lock()
			for client := range h.clients {
				if !client.firehose && client.sessionID != env.sessionID {
					continue
				}
				select {
				case client.send <- env.data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) subscribeRedis(ctx context.Context) {
	sub := h.rdb.Subscribe(ctx, redisChannel)
	defer func() { _ = sub.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				h.log.Warn("dropping malformed chat event", zap.Error(err))
				continue
			}
			h.deliver(ev.SessionID, []byte(msg.Payload))
		}
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.conn.Close()
	}()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages
		n := len(c.send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump pumps control frames until the peer goes away.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("websocket read error", zap.Error(err))
			}
			break
		}
	}
}

func (h *Hub) attach(conn *websocket.Conn, sessionID uuid.UUID, firehose bool) {
	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, 256),
		sessionID: sessionID,
		firehose:  firehose,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// ServeVisitor upgrades a visitor widget connection scoped to one session.
// Visitors are anonymous, so the only check is a well-formed session id.
func ServeVisitor(hub *Hub, c *gin.Context) {
	sessionID, err := uuid.Parse(c.Query("session_id"))
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	hub.attach(conn, sessionID, false)
}

// ServeAdmin upgrades a staff firehose connection. The caller must already
// have passed the permission guard on the route.
func ServeAdmin(hub *Hub, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	hub.attach(conn, uuid.Nil, true)
}
