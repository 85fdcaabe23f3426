package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/stream"
)

// serveRoutes runs one request through a Server's real route table so path
// parameters bind the way they do in production.
func serveRoutes(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	s.registerRoutes(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTurnHandler_NoExecutor(t *testing.T) {
	// Registration validation fires before any service call, so a bare
	// Server is enough. Happy-path streaming is covered by the orchestrator
	// tests with an in-memory sink.
	s := &Server{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/turns",
		strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := serveRoutes(t, s, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "turn execution is not available")
}

func TestCancelTurnHandler_NoExecutor(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/cancel", nil)

	rec := serveRoutes(t, s, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSSESink_DeferredHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	sink := newSSESink(rec)

	// Nothing written until the first event, so a registration failure can
	// still set its own status code.
	assert.False(t, sink.started)
	assert.Empty(t, rec.Header().Get("Content-Type"))

	require.NoError(t, sink.Send(stream.ThinkingPayload{Type: stream.TypeThinking, Text: "working"}))
	assert.True(t, sink.started)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	require.NoError(t, sink.Send(stream.DonePayload{Type: stream.TypeDone, MessageID: "m-1"}))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "data: "))
	assert.Contains(t, body, `"type":"thinking"`)
	assert.Contains(t, body, `"type":"done"`)

	// Each frame is its own data line with a blank separator.
	assert.Equal(t, 2, strings.Count(body, "data: "))
	assert.Equal(t, 2, strings.Count(body, "\n\n"))
}

func TestSSESink_RoundTripsThroughReader(t *testing.T) {
	rec := httptest.NewRecorder()
	sink := newSSESink(rec)
	require.NoError(t, sink.Send(stream.TextPayload{Type: stream.TypeText, Delta: "hello"}))
	require.NoError(t, sink.Send(stream.DonePayload{Type: stream.TypeDone, MessageID: "m-2"}))

	r := stream.NewReader(rec.Body)
	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, stream.TypeText, ev.Type)
	assert.Equal(t, "hello", ev.Text.Delta)

	ev, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, stream.TypeDone, ev.Type)
	assert.True(t, ev.Terminal())
}
