package relay

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub(newTestLogger(t))

	r := ginext.New("test")
	r.GET("/ws", hub.HandleWS)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connected clients, have %d", n, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastsValidatedTicket(t *testing.T) {
	hub, url := newTestHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	usedAt := time.Now().UTC().Truncate(time.Second)
	ticket := &domain.Ticket{
		ID:         "t1",
		EventID:    "e1",
		Status:     domain.TicketStatusUsed,
		UsedAt:     &usedAt,
		UsedInMode: "ENTRY",
	}

	hub.NotifyTicketValidated(context.Background(), ticket, domain.SessionContext{
		DeviceID: "device-1",
		Gate:     "GATE A",
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ValidatedMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "ticket_validated", msg.Type)
	assert.Equal(t, "t1", msg.TicketID)
	assert.Equal(t, "device-1", msg.DeviceID)
	assert.Equal(t, "GATE A", msg.Gate)
	assert.True(t, usedAt.Equal(msg.UsedAt))
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub, url := newTestHub(t)
	first := dial(t, url)
	second := dial(t, url)
	waitForClients(t, hub, 2)

	hub.NotifyTicketValidated(context.Background(), &domain.Ticket{ID: "t1"}, domain.SessionContext{})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"t1"`)
	}
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	hub, url := newTestHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestHub_NoClientsIsNoop(t *testing.T) {
	hub := NewHub(newTestLogger(t))

	hub.NotifyTicketValidated(context.Background(), &domain.Ticket{ID: "t1"}, domain.SessionContext{})

	assert.Equal(t, 0, hub.ClientCount())
}
