package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/models"
	testdb "github.com/loomhq/loom/test/database"
)

func TestEventService_CreateAndCatchup(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionSvc := NewSessionService(client.Client)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, sessionSvc)
	channel := "session:" + session.ID

	var lastID int64
	for i := 0; i < 5; i++ {
		ev, err := svc.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   channel,
			Payload:   map[string]any{"type": "turn.progress", "round": i},
		})
		require.NoError(t, err)
		assert.Greater(t, ev.ID, lastID, "event ids must be monotonic")
		lastID = ev.ID
	}

	t.Run("full replay from zero", func(t *testing.T) {
		events, err := svc.GetCatchupEvents(ctx, channel, 0, 10)
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})

	t.Run("replay after a cursor", func(t *testing.T) {
		all, err := svc.GetCatchupEvents(ctx, channel, 0, 10)
		require.NoError(t, err)
		events, err := svc.GetCatchupEvents(ctx, channel, all[2].ID, 10)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("limit applies", func(t *testing.T) {
		events, err := svc.GetCatchupEvents(ctx, channel, 0, 3)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := svc.GetCatchupEvents(ctx, "session:other", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_DeleteEventsBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionSvc := NewSessionService(client.Client)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, sessionSvc)
	channel := "session:" + session.ID

	_, err := svc.CreateEvent(ctx, models.CreateEventRequest{
		SessionID: session.ID,
		Channel:   channel,
		Payload:   map[string]any{"type": "turn.started"},
	})
	require.NoError(t, err)

	// Nothing is old enough yet.
	n, err := svc.DeleteEventsBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	// A future cutoff removes everything.
	n, err = svc.DeleteEventsBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	events, err := svc.GetCatchupEvents(ctx, channel, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
