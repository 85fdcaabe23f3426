package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/pkg/models"
	testdb "github.com/loomhq/loom/test/database"
)

func setupSnapshotTest(t *testing.T) (*SnapshotService, *ent.ConversationSession) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessionSvc := NewSessionService(client.Client)
	session := newTestSession(t, sessionSvc)
	return NewSnapshotService(client.Client, slog.Default()), session
}

func appendSnapshot(t *testing.T, svc *SnapshotService, sessionID, branchName, messageID string) *ent.UISnapshot {
	t.Helper()
	snap, err := svc.CreateSnapshot(context.Background(), models.CreateSnapshotRequest{
		SessionID:    sessionID,
		MessageID:    messageID,
		BranchName:   branchName,
		Content:      `{"blocks":[{"id":"table-orders"}]}`,
		LayoutIntent: "preview",
	})
	require.NoError(t, err)
	return snap
}

func TestSnapshotService_AppendAssignsContiguousIndexes(t *testing.T) {
	svc, session := setupSnapshotTest(t)
	ctx := context.Background()

	first := appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())
	second := appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())
	third := appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())

	assert.Equal(t, 0, first.SnapshotIndex)
	assert.Equal(t, 1, second.SnapshotIndex)
	assert.Equal(t, 2, third.SnapshotIndex)

	// Parent linkage follows the branch order; the root has none.
	assert.Nil(t, first.ParentID)
	require.NotNil(t, second.ParentID)
	assert.Equal(t, first.ID, *second.ParentID)
	require.NotNil(t, third.ParentID)
	assert.Equal(t, second.ID, *third.ParentID)

	snaps, err := svc.ListSnapshots(ctx, session.ID, models.MainBranch, false)
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	for i, snap := range snaps {
		assert.Equal(t, i, snap.SnapshotIndex)
		assert.True(t, snap.IsActive)
	}
}

func TestSnapshotService_DeactivateAfter(t *testing.T) {
	svc, session := setupSnapshotTest(t)
	ctx := context.Background()

	appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())
	appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())
	appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())

	n, err := svc.DeactivateAfter(ctx, session.ID, models.MainBranch, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	active, err := svc.ListSnapshots(ctx, session.ID, models.MainBranch, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 0, active[0].SnapshotIndex)

	// Tombstoned rows stay readable for audit.
	all, err := svc.ListSnapshots(ctx, session.ID, models.MainBranch, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Indexes on the source branch are never renumbered: the next append
	// still lands past the tombstones.
	next := appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())
	assert.Equal(t, 3, next.SnapshotIndex)
}

func TestSnapshotService_BranchFamily(t *testing.T) {
	svc, session := setupSnapshotTest(t)
	ctx := context.Background()

	messageID := uuid.New().String()
	appendSnapshot(t, svc, session.ID, models.MainBranch, messageID)

	_, err := svc.CreateBranch(ctx, session.ID, "fork-1700000000000", models.MainBranch, 0)
	require.NoError(t, err)
	appendSnapshot(t, svc, session.ID, "fork-1700000000000", messageID)

	summaries, err := svc.BranchFamily(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, models.MainBranch, summaries[0].Name)
	assert.Equal(t, "fork-1700000000000", summaries[1].Name)
	require.NotNil(t, summaries[1].ParentBranch)
	assert.Equal(t, models.MainBranch, *summaries[1].ParentBranch)
	require.NotNil(t, summaries[1].ForkedFromIndex)
	assert.Equal(t, 0, *summaries[1].ForkedFromIndex)

	// Both branches answer the same message.
	snaps, err := svc.SnapshotsForMessage(ctx, session.ID, messageID)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestSnapshotService_BranchHead(t *testing.T) {
	svc, session := setupSnapshotTest(t)
	ctx := context.Background()

	_, err := svc.BranchHead(ctx, session.ID, models.MainBranch)
	assert.ErrorIs(t, err, ErrNotFound)

	appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())
	want := appendSnapshot(t, svc, session.ID, models.MainBranch, uuid.New().String())

	head, err := svc.BranchHead(ctx, session.ID, models.MainBranch)
	require.NoError(t, err)
	assert.Equal(t, want.ID, head.ID)

	// Tombstoning the head moves it back.
	_, err = svc.DeactivateAfter(ctx, session.ID, models.MainBranch, 0)
	require.NoError(t, err)
	head, err = svc.BranchHead(ctx, session.ID, models.MainBranch)
	require.NoError(t, err)
	assert.Equal(t, 0, head.SnapshotIndex)
}

func TestSnapshotService_DuplicateBranchRejected(t *testing.T) {
	svc, session := setupSnapshotTest(t)
	ctx := context.Background()

	_, err := svc.CreateBranch(ctx, session.ID, "fork-1", models.MainBranch, 0)
	require.NoError(t, err)
	_, err = svc.CreateBranch(ctx, session.ID, "fork-1", models.MainBranch, 0)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
