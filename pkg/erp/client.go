package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/loomhq/loom/pkg/config"
	"github.com/loomhq/loom/pkg/decision"
)

// ErrUnknownTarget indicates a decision named a target that is not in the
// configured catalog.
var ErrUnknownTarget = errors.New("unknown target")

// CallError carries the classification the stream error event needs.
type CallError struct {
	TargetID   string
	StatusCode int
	Kind       decision.ErrorKind
	Err        error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("target %s: %v", e.TargetID, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Client executes business-system calls during a turn. Calls run inside the
// turn's context so a client abort cancels whatever is still cancellable.
type Client struct {
	targets    *config.TargetRegistry
	httpClient *http.Client
	cache      *Cache
	logger     *slog.Logger
}

// NewClient creates a target client over the configured catalog.
func NewClient(targets *config.TargetRegistry, logger *slog.Logger) *Client {
	return &Client{
		targets: targets,
		// Per-call deadlines come from the target config via the request
		// context, so the shared client carries only a generous ceiling.
		httpClient: &http.Client{Timeout: 60 * time.Second},
		cache:      NewCache(),
		logger:     logger.With("component", "erp"),
	}
}

// Invoke executes one API call from a decision and returns the raw response
// body. Read-only targets with a cache TTL are served from cache when fresh.
func (c *Client) Invoke(ctx context.Context, call decision.APICall) (json.RawMessage, error) {
	target, err := c.targets.Get(call.TargetID)
	if err != nil {
		return nil, &CallError{
			TargetID: call.TargetID,
			Kind:     decision.ErrorOperationFailed,
			Err:      fmt.Errorf("%w: %s", ErrUnknownTarget, call.TargetID),
		}
	}

	cacheable := target.CacheTTL > 0 && target.Method == http.MethodGet
	cacheKey := ""
	if cacheable {
		cacheKey = call.TargetID + "?" + canonicalParams(call.Parameters)
		if body, ok := c.cache.Get(cacheKey, target.CacheTTL); ok {
			return body, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, target.Timeout)
	defer cancel()

	req, err := c.buildRequest(ctx, target, call)
	if err != nil {
		return nil, &CallError{
			TargetID: call.TargetID,
			Kind:     decision.ErrorOperationFailed,
			Err:      err,
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &CallError{
			TargetID: call.TargetID,
			Kind:     decision.ErrorUpstreamUnavailable,
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, &CallError{
			TargetID: call.TargetID,
			Kind:     decision.ErrorUpstreamUnavailable,
			Err:      fmt.Errorf("read response body: %w", err),
		}
	}

	c.logger.Debug("Target call completed",
		"target_id", call.TargetID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return nil, &CallError{
			TargetID:   call.TargetID,
			StatusCode: resp.StatusCode,
			Kind:       classifyStatus(resp.StatusCode),
			Err:        fmt.Errorf("target returned HTTP %d", resp.StatusCode),
		}
	}

	if cacheable {
		c.cache.Set(cacheKey, body)
	}
	return body, nil
}

func (c *Client) buildRequest(ctx context.Context, target *config.TargetConfig, call decision.APICall) (*http.Request, error) {
	var req *http.Request
	var err error

	if target.Method == http.MethodGet {
		u, parseErr := url.Parse(target.BaseURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse target URL: %w", parseErr)
		}
		q := u.Query()
		for k, v := range call.Parameters {
			q.Set(k, fmt.Sprintf("%v", v))
		}
		u.RawQuery = q.Encode()
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	} else {
		payload, marshalErr := json.Marshal(call.Parameters)
		if marshalErr != nil {
			return nil, fmt.Errorf("marshal parameters: %w", marshalErr)
		}
		req, err = http.NewRequestWithContext(ctx, target.Method, target.BaseURL, bytes.NewReader(payload))
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if target.TokenEnv != "" {
		if token := os.Getenv(target.TokenEnv); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// classifyStatus maps an HTTP status to the error taxonomy the client shows.
// Rate limits and upstream outages get distinct kinds so the UI can avoid
// auto-retry storms.
func classifyStatus(status int) decision.ErrorKind {
	switch {
	case status == http.StatusTooManyRequests:
		return decision.ErrorRateLimited
	case status >= 500:
		return decision.ErrorUpstreamUnavailable
	default:
		return decision.ErrorOperationFailed
	}
}

// canonicalParams renders parameters in sorted key order so equivalent calls
// share a cache entry.
func canonicalParams(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte('&')
		}
		fmt.Fprintf(&buf, "%s=%v", k, params[k])
	}
	return buf.String()
}
