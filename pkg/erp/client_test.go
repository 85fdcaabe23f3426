package erp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/config"
	"github.com/loomhq/loom/pkg/decision"
)

func newTestClient(targets map[string]*config.TargetConfig) *Client {
	return NewClient(config.NewTargetRegistry(targets), slog.Default())
}

func targetFor(serverURL string, mutate func(*config.TargetConfig)) map[string]*config.TargetConfig {
	t := &config.TargetConfig{
		Description: "test target",
		BaseURL:     serverURL,
		Method:      http.MethodGet,
		Timeout:     5 * time.Second,
	}
	if mutate != nil {
		mutate(t)
	}
	return map[string]*config.TargetConfig{"erp_orders": t}
}

func TestInvoke_GetPassesParameters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"orders":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(targetFor(srv.URL, nil))
	body, err := client.Invoke(context.Background(), decision.APICall{
		TargetID:   "erp_orders",
		Parameters: map[string]any{"region": "emea", "limit": 10},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"orders":[]}`, string(body))
	assert.Contains(t, gotQuery, "region=emea")
	assert.Contains(t, gotQuery, "limit=10")
}

func TestInvoke_PostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":"ord-1"}`))
	}))
	defer srv.Close()

	client := newTestClient(targetFor(srv.URL, func(tc *config.TargetConfig) {
		tc.Method = http.MethodPost
	}))
	body, err := client.Invoke(context.Background(), decision.APICall{
		TargetID:   "erp_orders",
		Parameters: map[string]any{"sku": "A-100"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"ord-1"}`, string(body))
}

func TestInvoke_BearerTokenFromEnv(t *testing.T) {
	t.Setenv("TEST_ERP_TOKEN", "secret-token")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(targetFor(srv.URL, func(tc *config.TargetConfig) {
		tc.TokenEnv = "TEST_ERP_TOKEN"
	}))
	_, err := client.Invoke(context.Background(), decision.APICall{TargetID: "erp_orders"})
	require.NoError(t, err)
}

func TestInvoke_UnknownTarget(t *testing.T) {
	client := newTestClient(map[string]*config.TargetConfig{})
	_, err := client.Invoke(context.Background(), decision.APICall{TargetID: "nope"})

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.ErrorIs(t, err, ErrUnknownTarget)
	assert.Equal(t, decision.ErrorOperationFailed, callErr.Kind)
}

func TestInvoke_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   decision.ErrorKind
	}{
		{"rate limited", http.StatusTooManyRequests, decision.ErrorRateLimited},
		{"server error", http.StatusInternalServerError, decision.ErrorUpstreamUnavailable},
		{"bad gateway", http.StatusBadGateway, decision.ErrorUpstreamUnavailable},
		{"client error", http.StatusBadRequest, decision.ErrorOperationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := newTestClient(targetFor(srv.URL, nil))
			_, err := client.Invoke(context.Background(), decision.APICall{TargetID: "erp_orders"})

			var callErr *CallError
			require.ErrorAs(t, err, &callErr)
			assert.Equal(t, tt.want, callErr.Kind)
			assert.Equal(t, tt.status, callErr.StatusCode)
		})
	}
}

func TestInvoke_CachesReadOnlyTargets(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"orders":[1]}`))
	}))
	defer srv.Close()

	client := newTestClient(targetFor(srv.URL, func(tc *config.TargetConfig) {
		tc.CacheTTL = time.Minute
	}))

	call := decision.APICall{TargetID: "erp_orders", Parameters: map[string]any{"region": "emea"}}
	_, err := client.Invoke(context.Background(), call)
	require.NoError(t, err)
	_, err = client.Invoke(context.Background(), call)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	// Different parameters miss the cache.
	_, err = client.Invoke(context.Background(), decision.APICall{
		TargetID:   "erp_orders",
		Parameters: map[string]any{"region": "apac"},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestInvoke_ContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	client := newTestClient(targetFor(srv.URL, nil))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.Invoke(ctx, decision.APICall{TargetID: "erp_orders"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, decision.ErrorUpstreamUnavailable, callErr.Kind)
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache()
	cache.Set("k", []byte("v"))

	got, ok := cache.Get("k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	_, ok = cache.Get("k", -time.Second)
	assert.False(t, ok)

	// The expired entry was evicted, a fresh Set brings it back.
	_, ok = cache.Get("k", time.Minute)
	assert.False(t, ok)
	cache.Set("k", []byte("v2"))
	got, ok = cache.Get("k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), got)
}

func TestCatalog(t *testing.T) {
	registry := config.NewTargetRegistry(map[string]*config.TargetConfig{
		"erp_orders": {
			Description: "Order lookup",
			BaseURL:     "https://erp.internal/orders",
			Parameters:  map[string]string{"region": "sales region code"},
		},
		"erp_inventory": {
			Description: "Inventory levels",
			BaseURL:     "https://erp.internal/inventory",
		},
	})

	catalog := Catalog(registry)
	assert.Contains(t, catalog, "- erp_inventory: Inventory levels")
	assert.Contains(t, catalog, "- erp_orders: Order lookup (parameters: region - sales region code)")
	// Sorted by target ID.
	assert.Less(t, 0, len(catalog))
	assert.Less(t,
		indexOf(catalog, "erp_inventory"),
		indexOf(catalog, "erp_orders"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
