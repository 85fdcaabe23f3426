package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/stream"
)

// streamServer serves a canned SSE stream for one turn endpoint.
func streamServer(t *testing.T, frames []any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req models.TurnRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "text/event-stream")
		sw := stream.NewWriter(w)
		for _, f := range frames {
			require.NoError(t, sw.Send(f))
		}
	}))
}

func TestConsumer_RunTurn(t *testing.T) {
	srv := streamServer(t, []any{
		stream.ThinkingPayload{Type: stream.TypeThinking, Text: "Looking at revenue"},
		stream.TextPayload{Type: stream.TypeText, Delta: "Revenue is up."},
		stream.DonePayload{Type: stream.TypeDone, MessageID: "msg-1"},
	})
	defer srv.Close()

	c := NewConsumer(srv.URL, slog.Default())
	var seen []stream.EventType
	out, err := c.RunTurn(context.Background(), "sess-1", models.TurnRequest{Message: "how is revenue"}, func(ev stream.Event) {
		seen = append(seen, ev.Type)
	})
	require.NoError(t, err)
	assert.Equal(t, []stream.EventType{stream.TypeThinking, stream.TypeText, stream.TypeDone}, seen)
	assert.True(t, out.Done)
	assert.Equal(t, "Revenue is up.", out.Text)
	assert.False(t, c.Processing())
}

func TestConsumer_UnknownEventsIgnored(t *testing.T) {
	srv := streamServer(t, []any{
		map[string]string{"type": "hologram", "payload": "future"},
		stream.DonePayload{Type: stream.TypeDone, MessageID: "msg-2"},
	})
	defer srv.Close()

	c := NewConsumer(srv.URL, slog.Default())
	var seen []stream.EventType
	out, err := c.RunTurn(context.Background(), "sess-1", models.TurnRequest{Message: "hi"}, func(ev stream.Event) {
		seen = append(seen, ev.Type)
	})
	require.NoError(t, err)
	assert.Equal(t, []stream.EventType{stream.TypeDone}, seen, "unknown frames never reach the caller")
	assert.True(t, out.Done)
}

func TestConsumer_RejectsConcurrentTurn(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		<-release
		_ = stream.NewWriter(w).Send(stream.DonePayload{Type: stream.TypeDone, MessageID: "msg-3"})
	}))
	defer srv.Close()
	defer close(release)

	c := NewConsumer(srv.URL, slog.Default())
	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		close(started)
		_, err := c.RunTurn(context.Background(), "sess-1", models.TurnRequest{Message: "first"}, nil)
		assert.NoError(t, err)
	}()

	<-started
	require.Eventually(t, c.Processing, time.Second, 5*time.Millisecond)

	_, err := c.RunTurn(context.Background(), "sess-1", models.TurnRequest{Message: "second"}, nil)
	assert.ErrorIs(t, err, ErrTurnInFlight)

	release <- struct{}{}
	wg.Wait()
	assert.False(t, c.Processing())
}

func TestConsumer_CancelMidStream(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		sw := stream.NewWriter(w)
		_ = sw.Send(stream.TextPayload{Type: stream.TypeText, Delta: "partial"})
		close(blocked)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewConsumer(srv.URL, slog.Default())
	done := make(chan TurnOutcome, 1)
	go func() {
		out, err := c.RunTurn(context.Background(), "sess-1", models.TurnRequest{Message: "slow"}, nil)
		assert.NoError(t, err, "a local cancel is not a transport error")
		done <- out
	}()

	<-blocked
	require.Eventually(t, c.Cancel, time.Second, 5*time.Millisecond)

	select {
	case out := <-done:
		assert.True(t, out.Cancelled)
		assert.False(t, out.Done)
		assert.Equal(t, "[Request cancelled]", out.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled turn never returned")
	}
	assert.False(t, c.Cancel(), "nothing left to cancel")
}

func TestConsumer_TransportFailureMidStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		sw := stream.NewWriter(w)
		_ = sw.Send(stream.TextPayload{Type: stream.TypeText, Delta: "partial"})
		// Abort the connection without a done frame.
		conn, _, err := w.(http.Hijacker).Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer srv.Close()

	c := NewConsumer(srv.URL, slog.Default())
	out, err := c.RunTurn(context.Background(), "sess-1", models.TurnRequest{Message: "hi"}, nil)
	require.Error(t, err)
	assert.False(t, out.Done, "a stream that dies without done committed nothing")
	assert.Equal(t, "partial", out.Text)
}

func TestConsumer_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"turn already active"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := NewConsumer(srv.URL, slog.Default())
	_, err := c.RunTurn(context.Background(), "sess-1", models.TurnRequest{Message: "hi"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprint(http.StatusConflict))
}
