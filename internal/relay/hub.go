package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The scanner UI and the panel connect from their own origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ValidatedMessage is the wire shape pushed to every connected viewer when a
// ticket is redeemed.
type ValidatedMessage struct {
	Type       string    `json:"type"`
	TicketID   string    `json:"ticket_id"`
	EventID    string    `json:"event_id"`
	UsedInMode string    `json:"used_in_mode"`
	DeviceID   string    `json:"device_id"`
	Gate       string    `json:"gate,omitempty"`
	UsedAt     time.Time `json:"used_at"`
}

// Hub fans approved redemptions out to connected websocket clients. Slow
// clients are dropped, not waited on; a missed message is corrected by the
// next sync poll.
type Hub struct {
	logger logger.Logger
	bridge *Bridge

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		logger:  log,
		clients: make(map[*client]struct{}),
	}
}

// AttachBridge mirrors broadcasts through a Redis channel so redemptions
// committed on other instances reach viewers connected here.
func (h *Hub) AttachBridge(b *Bridge) {
	h.bridge = b
}

// HandleWS upgrades the request and keeps the connection registered until the
// peer goes away.
func (h *Hub) HandleWS(c *ginext.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", logger.String("error", err.Error()))
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	go h.writePump(cl)
	h.readPump(cl)
}

// NotifyTicketValidated broadcasts the redemption to local clients and, when a
// bridge is attached, publishes it for other instances. Best effort.
func (h *Hub) NotifyTicketValidated(ctx context.Context, t *domain.Ticket, sctx domain.SessionContext) {
	msg := ValidatedMessage{
		Type:       "ticket_validated",
		TicketID:   t.ID,
		EventID:    t.EventID,
		UsedInMode: t.UsedInMode,
		DeviceID:   sctx.DeviceID,
		Gate:       sctx.Gate,
	}
	if t.UsedAt != nil {
		msg.UsedAt = *t.UsedAt
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal validated message", logger.String("error", err.Error()))
		return
	}

	// With a bridge the message comes back through the subscription, which
	// delivers it locally too. Broadcasting here as well would double it.
	if h.bridge != nil {
		h.bridge.Publish(ctx, payload)
		return
	}

	h.broadcast(payload)
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for cl := range h.clients {
		select {
		case cl.send <- payload:
		default:
			// Buffer full: the peer is not reading. Close and let the
			// pumps unregister it.
			go cl.conn.Close()
		}
	}
}

// ClientCount reports how many viewers are connected right now.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) writePump(cl *client) {
	for payload := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			break
		}
	}
	cl.conn.Close()
}

// readPump discards inbound frames; the relay is one-way. It exists to detect
// the close handshake and tear the client down.
func (h *Hub) readPump(cl *client) {
	defer h.unregister(cl)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
	cl.conn.Close()
}
