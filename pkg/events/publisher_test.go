package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SnapshotCreatedPayload{
			Type:       EventTypeSnapshotCreated,
			SessionID:  "sess-1",
			SnapshotID: "snap-1",
			BranchName: "main",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSnapshotCreated)
		assert.Contains(t, result, "snap-1")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(TurnProgressPayload{
			Type:      EventTypeTurnProgress,
			SessionID: "sess-2",
			Phase:     "thinking",
			Detail:    strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload keeps routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(TurnProgressPayload{
			Type:      EventTypeTurnProgress,
			SessionID: "sess-3",
			Detail:    strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTurnProgress)
		assert.Contains(t, result, "sess-3")
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TurnStartedPayload{
			Type:      EventTypeTurnStarted,
			SessionID: "sess-1",
			MessageID: "msg-1",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "msg-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(TurnFailedPayload{
			Type:      EventTypeTurnFailed,
			SessionID: "sess-9",
			Kind:      "operation_failed",
			Message:   strings.Repeat("y", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 7)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":7`)
		assert.Contains(t, result, "sess-9")
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestTurnCompletedPayload_JSON(t *testing.T) {
	payload := TurnCompletedPayload{
		Type:           EventTypeTurnCompleted,
		SessionID:      "sess-123",
		MessageID:      "msg-456",
		BranchName:     "fork-1700000000000",
		SnapshotID:     "snap-789",
		ResponseFormat: "ui",
		Timestamp:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded TurnCompletedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeTurnCompleted, decoded.Type)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, "fork-1700000000000", decoded.BranchName)
	assert.Equal(t, "snap-789", decoded.SnapshotID)
	assert.Equal(t, "ui", decoded.ResponseFormat)
}

func TestTurnCompletedPayload_TextTurnOmitsSnapshotID(t *testing.T) {
	// Text-only turns commit nothing, so snapshot_id stays out of the JSON.
	payload := TurnCompletedPayload{
		Type:           EventTypeTurnCompleted,
		SessionID:      "sess-1",
		MessageID:      "msg-1",
		BranchName:     "main",
		ResponseFormat: "text",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "snapshot_id")
}

func TestBranchForkedPayload_JSON(t *testing.T) {
	payload := BranchForkedPayload{
		Type:            EventTypeBranchForked,
		SessionID:       "sess-5",
		BranchName:      "fork-1700000000001",
		ParentBranch:    "main",
		ForkedFromIndex: 2,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded BranchForkedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "main", decoded.ParentBranch)
	assert.Equal(t, 2, decoded.ForkedFromIndex)
}
