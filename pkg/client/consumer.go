package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/stream"
)

// ErrTurnInFlight rejects a new turn while one is still streaming. Turns
// are never queued; the user retries once the current one settles.
var ErrTurnInFlight = errors.New("a turn is already streaming")

// Consumer opens turn streams against the server and reduces them. One
// consumer per tab; at most one stream is outstanding at a time.
type Consumer struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu         sync.Mutex
	processing bool
	cancel     context.CancelFunc
}

// NewConsumer creates a consumer for the given server base URL. The HTTP
// client must not impose an overall timeout; streams outlive any sane one.
func NewConsumer(baseURL string, logger *slog.Logger) *Consumer {
	return &Consumer{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger.With("component", "client"),
	}
}

// Processing reports whether a turn stream is currently open.
func (c *Consumer) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

// Cancel aborts the outstanding turn, if any. The aborted turn's outcome
// carries the local cancellation marker and Done stays false.
func (c *Consumer) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel == nil {
		return false
	}
	c.cancel()
	return true
}

// RunTurn posts a turn and consumes its stream to completion, invoking
// onEvent for every decoded frame (nil is allowed). It returns the reduced
// outcome. A transport failure mid-stream returns the partial outcome and
// the error; a cancelled turn returns the cancellation outcome and no error.
func (c *Consumer) RunTurn(parentCtx context.Context, sessionID string, req models.TurnRequest, onEvent func(stream.Event)) (TurnOutcome, error) {
	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		return TurnOutcome{}, ErrTurnInFlight
	}
	ctx, cancel := context.WithCancel(parentCtx)
	c.processing = true
	c.cancel = cancel
	c.mu.Unlock()

	defer func() {
		cancel()
		c.mu.Lock()
		c.processing = false
		c.cancel = nil
		c.mu.Unlock()
	}()

	reducer := NewTurnReducer()

	resp, err := c.openStream(ctx, sessionID, req)
	if err != nil {
		if ctx.Err() != nil && parentCtx.Err() == nil {
			reducer.Cancel()
			return reducer.Outcome(), nil
		}
		return TurnOutcome{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	reader := stream.NewReader(resp.Body)
	for {
		ev, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if ctx.Err() != nil && parentCtx.Err() == nil {
				reducer.Cancel()
				return reducer.Outcome(), nil
			}
			return reducer.Outcome(), fmt.Errorf("stream read failed: %w", err)
		}

		if ev.Type == stream.TypeUnknown {
			c.logger.Debug("Ignoring unknown stream event")
			continue
		}

		reducer.Apply(ev)
		if onEvent != nil {
			onEvent(ev)
		}
		if ev.Terminal() {
			break
		}
	}

	return reducer.Outcome(), nil
}

// openStream posts the turn request and validates the response status.
func (c *Consumer) openStream(ctx context.Context, sessionID string, req models.TurnRequest) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode turn request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/sessions/%s/turns", c.baseURL, sessionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build turn request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("turn request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("turn request returned %d: %s", resp.StatusCode, string(msg))
	}
	return resp, nil
}

// WithTimeout returns a copy of the consumer whose HTTP client enforces a
// connect-phase timeout without limiting stream lifetime.
func (c *Consumer) WithTimeout(dialTimeout time.Duration) *Consumer {
	clone := &Consumer{
		baseURL: c.baseURL,
		logger:  c.logger,
		httpClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: dialTimeout,
			},
		},
		processing: c.processing,
		cancel:     c.cancel,
	}
	return clone
}
