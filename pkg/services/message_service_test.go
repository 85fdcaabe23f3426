package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/models"
	testdb "github.com/loomhq/loom/test/database"
)

func TestMessageService_CreateAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionSvc := NewSessionService(client.Client)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, sessionSvc)

	first, err := svc.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID: session.ID,
		Content:   "show me open orders",
		Author:    "alice",
	})
	require.NoError(t, err)

	second, err := svc.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID: session.ID,
		Content:   "only the overdue ones",
	})
	require.NoError(t, err)

	msgs, err := svc.ListMessages(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, first.ID, msgs[0].ID)
	assert.Equal(t, second.ID, msgs[1].ID)

	got, err := svc.GetMessage(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "show me open orders", got.Content)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", *got.Author)
}

func TestMessageService_EditLineage(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionSvc := NewSessionService(client.Client)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, sessionSvc)

	original, err := svc.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID: session.ID,
		Content:   "revenue for Q1",
	})
	require.NoError(t, err)

	edited, err := svc.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID:    session.ID,
		Content:      "revenue for Q2",
		EditedFromID: original.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, edited.EditedFromID)
	assert.Equal(t, original.ID, *edited.EditedFromID)
}

func TestMessageService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	_, err := svc.CreateMessage(ctx, models.CreateMessageRequest{Content: "hi"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateMessage(ctx, models.CreateMessageRequest{SessionID: "s"})
	assert.True(t, IsValidationError(err))

	// Unknown session violates the foreign key.
	_, err = svc.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID: "missing-session",
		Content:   "hi",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetMessage(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
