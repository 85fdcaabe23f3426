package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchup implements CatchupQuerier for tests.
type mockCatchup struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchup) CatchupEvents(_ context.Context, _ string, _ int64, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func setupTestManager(t *testing.T, catchup CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(catchup, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendMsg(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, _ := json.Marshal(msg)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchup{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: SessionChannel("test-123")})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "session:test-123", msg["channel"])

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount("session:test-123"))
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchup{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := SessionChannel("broadcast-test")
	sendMsg(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	sendMsg(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1)
	readJSON(t, conn2)

	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeSnapshotCreated, "snapshot_id": "snap-1"})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, EventTypeSnapshotCreated, msg1["type"])
	assert.Equal(t, "snap-1", msg1["snapshot_id"])
	assert.Equal(t, EventTypeSnapshotCreated, msg2["type"])
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchup{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	sendMsg(t, conn1, ClientMessage{Action: "subscribe", Channel: SessionChannel("a")})
	readJSON(t, conn1)
	sendMsg(t, conn2, ClientMessage{Action: "subscribe", Channel: SessionChannel("b")})
	readJSON(t, conn2)

	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "target": "a"})
	manager.Broadcast(SessionChannel("a"), payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "a", msg["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive session a broadcast")
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_CatchupNormal(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]any{"type": EventTypeTurnStarted, "seq": float64(1)}},
		{ID: 11, Payload: map[string]any{"type": EventTypeSnapshotCreated, "seq": float64(2)}},
		{ID: 12, Payload: map[string]any{"type": EventTypeTurnCompleted, "seq": float64(3)}},
	}

	_, server := setupTestManager(t, &mockCatchup{events: events})
	conn := connectWS(t, server)
	readJSON(t, conn)

	// Auto-catchup fires right after the confirmation: events arrive in
	// order with db_event_id injected from the row ID.
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: SessionChannel("catchup-test")})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])

	for i := 0; i < 3; i++ {
		evt := readJSON(t, conn)
		assert.Equal(t, float64(i+1), evt["seq"])
		assert.Equal(t, float64(10+i), evt["db_event_id"])
	}

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive overflow for small catchup")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID:      int64(i + 1),
			Payload: map[string]any{"type": "test", "seq": i},
		}
	}

	_, server := setupTestManager(t, &mockCatchup{events: manyEvents})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: SessionChannel("overflow-test")})
	readJSON(t, conn) // subscription.confirmed

	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// A failed catchup query is logged, not fatal; the connection stays up.
	_, server := setupTestManager(t, &mockCatchup{err: fmt.Errorf("database unreachable")})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: SessionChannel("err-test")})
	readJSON(t, conn) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := SessionChannel("unsub-test")
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	lastEventID := int64(0)
	sendMsg(t, conn, ClientMessage{Action: "catchup", Channel: "", LastEventID: &lastEventID})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_BroadcastToUnknownChannel(t *testing.T) {
	manager, _ := setupTestManager(t, &mockCatchup{})

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast("nonexistent-channel", payload)
	})
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchup{})

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: SessionChannel("cleanup-test")})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, 0, manager.ActiveConnections())
	assert.Equal(t, 0, manager.subscriberCount(SessionChannel("cleanup-test")))
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchup{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}
