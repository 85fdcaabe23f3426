package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/orchestrator"
	"github.com/loomhq/loom/pkg/services"
	"github.com/loomhq/loom/pkg/stream"
)

// maxMessageLength bounds one user turn's message body.
const maxMessageLength = 100_000

// turnHandler handles POST /api/v1/sessions/:id/turns.
// On success the response is a server-sent event stream; every outcome
// after the stream opens, including turn failures, travels as stream
// events. Registration rejections (turn already active, capacity, shutdown)
// happen before the first byte and surface as plain HTTP errors.
func (s *Server) turnHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.executor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "turn execution is not available")
	}

	var req models.TurnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if len(req.Message) > maxMessageLength {
		return echo.NewHTTPError(http.StatusBadRequest, "message exceeds maximum length of 100,000 characters")
	}

	// First turn of a conversation creates the session in place.
	newSession := false
	session, err := s.sessionService.GetSession(c.Request().Context(), sessionID, false)
	if errors.Is(err, services.ErrNotFound) {
		session, err = s.sessionService.CreateSession(c.Request().Context(), models.CreateSessionRequest{
			SessionID: sessionID,
			Author:    extractAuthor(c),
		})
		newSession = true
	}
	if err != nil {
		return mapServiceError(err)
	}

	sink := newSSESink(c.Response())
	execErr := s.executor.ExecuteTurn(c.Request().Context(), orchestrator.TurnInput{
		Session:    session,
		Request:    req,
		NewSession: newSession,
	}, sink)
	if execErr != nil && !sink.started {
		return mapExecutorError(execErr)
	}
	// Stream already open: the error, if any, was delivered as events.
	return nil
}

// sseSink defers the SSE response headers until the first event, so turn
// registration failures can still produce a normal HTTP status.
type sseSink struct {
	resp    http.ResponseWriter
	writer  *stream.Writer
	started bool
}

func newSSESink(resp http.ResponseWriter) *sseSink {
	return &sseSink{resp: resp}
}

func (s *sseSink) Send(payload any) error {
	if !s.started {
		h := s.resp.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		s.resp.WriteHeader(http.StatusOK)
		s.writer = stream.NewWriter(s.resp)
		s.started = true
	}
	return s.writer.Send(payload)
}

// cancelTurnHandler handles POST /api/v1/sessions/:id/cancel. Cancels the
// in-flight turn on this pod, if any.
func (s *Server) cancelTurnHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.executor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "turn execution is not available")
	}

	cancelled := s.executor.CancelTurn(sessionID)
	return c.JSON(http.StatusOK, map[string]any{
		"session_id": sessionID,
		"cancelled":  cancelled,
	})
}
