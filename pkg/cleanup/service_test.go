package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/config"
	"github.com/loomhq/loom/pkg/database"
	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/services"
	testdb "github.com/loomhq/loom/test/database"
)

func setupServices(t *testing.T) (*database.Client, *services.SessionService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewSessionService(client.Client), services.NewEventService(client.Client)
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetentionDays: 365,
		EventTTL:             1 * time.Hour,
		CleanupInterval:      1 * time.Hour,
	}
}

func TestService_SoftDeletesIdleSessions(t *testing.T) {
	client, sessionService, eventService := setupServices(t)
	ctx := context.Background()

	session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		Author:    "alice",
	})
	require.NoError(t, err)

	err = client.ConversationSession.UpdateOneID(session.ID).
		SetLastTurnAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, session.ID, true)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_SoftDeletesSessionsWithoutTurns(t *testing.T) {
	client, sessionService, eventService := setupServices(t)
	ctx := context.Background()

	session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		Author:    "alice",
	})
	require.NoError(t, err)

	// created_at is immutable in the schema; backdate it directly.
	_, err = client.DB().ExecContext(ctx,
		`UPDATE conversation_sessions SET created_at = $1 WHERE session_id = $2`,
		time.Now().Add(-400*24*time.Hour), session.ID)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, session.ID, true)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_PreservesActiveSessions(t *testing.T) {
	client, sessionService, eventService := setupServices(t)
	ctx := context.Background()

	session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		Author:    "alice",
	})
	require.NoError(t, err)

	err = client.ConversationSession.UpdateOneID(session.ID).
		SetLastTurnAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Nil(t, updated.DeletedAt)
}

func TestService_ExpiresOldEvents(t *testing.T) {
	client, sessionService, eventService := setupServices(t)
	ctx := context.Background()

	session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		Author:    "alice",
	})
	require.NoError(t, err)

	channel := "session:" + session.ID

	// An event past its TTL.
	_, err = client.Event.Create().
		SetSessionID(session.ID).
		SetChannel(channel).
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// A fresh event.
	_, err = client.Event.Create().
		SetSessionID(session.ID).
		SetChannel(channel).
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	events, err := eventService.GetCatchupEvents(ctx, channel, 0, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1, "expired event removed, fresh event preserved")
}
