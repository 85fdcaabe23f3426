package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/pkg/models"
	testdb "github.com/loomhq/loom/test/database"
)

func newTestSession(t *testing.T, svc *SessionService) *ent.ConversationSession {
	t.Helper()
	session, err := svc.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		Author:    "alice",
	})
	require.NoError(t, err)
	return session
}

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates session with main branch", func(t *testing.T) {
		session := newTestSession(t, svc)
		assert.Equal(t, models.MainBranch, session.ActiveBranch)
		assert.NotNil(t, session.Author)
		assert.Equal(t, "alice", *session.Author)

		snapSvc := NewSnapshotService(client.Client, slog.Default())
		b, err := snapSvc.GetBranch(ctx, session.ID, models.MainBranch)
		require.NoError(t, err)
		assert.Equal(t, models.MainBranch, b.Name)
		assert.Nil(t, b.ParentBranch)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		session := newTestSession(t, svc)
		_, err := svc.CreateSession(ctx, models.CreateSessionRequest{SessionID: session.ID})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, models.CreateSessionRequest{})
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_GetAndTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, svc)

	got, err := svc.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.GetSession(ctx, "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.SetTitle(ctx, session.ID, "Quarterly revenue review"))
	got, err = svc.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "Quarterly revenue review", *got.Title)
}

func TestSessionService_TouchLastTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, svc)
	require.NoError(t, svc.TouchLastTurn(ctx, session.ID, "pod-1"))

	got, err := svc.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	require.NotNil(t, got.LastTurnAt)
	assert.WithinDuration(t, time.Now(), *got.LastTurnAt, 5*time.Second)
	require.NotNil(t, got.PodID)
	assert.Equal(t, "pod-1", *got.PodID)
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	first := newTestSession(t, svc)
	second := newTestSession(t, svc)
	require.NoError(t, svc.SetTitle(ctx, first.ID, "Inventory turnover report"))
	require.NoError(t, svc.SetTitle(ctx, second.ID, "Payroll summary"))

	t.Run("lists all", func(t *testing.T) {
		result, err := svc.ListSessions(ctx, models.SessionFilters{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)
	})

	t.Run("filters by author", func(t *testing.T) {
		result, err := svc.ListSessions(ctx, models.SessionFilters{Author: "nobody", Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, result.TotalCount)
	})

	t.Run("excludes soft-deleted by default", func(t *testing.T) {
		require.NoError(t, svc.SoftDeleteSession(ctx, second.ID))

		result, err := svc.ListSessions(ctx, models.SessionFilters{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount)

		result, err = svc.ListSessions(ctx, models.SessionFilters{Limit: 10, IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)
	})
}

func TestSessionService_SoftDeleteOldSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	stale := newTestSession(t, svc)
	fresh := newTestSession(t, svc)

	// Age the stale session past the retention window.
	old := time.Now().AddDate(0, 0, -40)
	require.NoError(t, client.Client.ConversationSession.UpdateOneID(stale.ID).
		SetLastTurnAt(old).
		Exec(ctx))
	require.NoError(t, svc.TouchLastTurn(ctx, fresh.ID, ""))

	count, err := svc.SoftDeleteOldSessions(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.GetSession(ctx, stale.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetSession(ctx, fresh.ID, false)
	assert.NoError(t, err)

	// Idempotent: a second sweep finds nothing.
	count, err = svc.SoftDeleteOldSessions(ctx, 30)
	require.NoError(t, err)
	assert.Zero(t, count)
}
