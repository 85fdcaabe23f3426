package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/test/util"
)

// newTestClient wires a Client over the shared test database. The search
// indexes are created explicitly because the per-test schema bypasses the
// migration path.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateSearchIndexes(ctx, drv))

	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	session, err := client.ConversationSession.Create().
		SetID(uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)

	mustMessage := func(content string) *ent.ChatMessage {
		msg, err := client.ChatMessage.Create().
			SetID(uuid.New().String()).
			SetSessionID(session.ID).
			SetContent(content).
			Save(ctx)
		require.NoError(t, err)
		return msg
	}

	match := mustMessage("show me the delayed purchase orders for the Hamburg warehouse")
	mustMessage("summarize last month's revenue by region")

	rows, err := client.DB().QueryContext(ctx,
		`SELECT id FROM chat_messages
		WHERE to_tsvector('english', content) @@ to_tsquery('english', $1)`,
		"delayed & warehouse",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())

	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0])
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "loom", cfg.User)
		assert.Equal(t, "loom", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_NAME", "production")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "production", cfg.Database)
	})

	t.Run("invalid DB_PORT", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "invalid")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "loom",
		Password: "secret",
		Database: "loom",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=loom password=secret dbname=loom sslmode=disable",
		cfg.DSN())
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0))
	assert.Less(t, responseTime, float64(1_000_000), "milliseconds, not nanoseconds")
}
