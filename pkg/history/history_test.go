package history

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/models"
)

func newTestEngine(t *testing.T) (*Engine, *MemStore) {
	t.Helper()
	store := NewMemStore()
	engine := NewEngine(store, slog.Default())
	engine.now = func() time.Time { return time.Unix(1700000000, 0) }
	return engine, store
}

func appendSnapshot(t *testing.T, store *MemStore, sessionID, branch, messageID string) *Snapshot {
	t.Helper()
	snap, err := store.Append(context.Background(), models.CreateSnapshotRequest{
		SessionID:    sessionID,
		MessageID:    messageID,
		BranchName:   branch,
		Content:      `{"blocks":[]}`,
		LayoutIntent: "preview",
	})
	require.NoError(t, err)
	return snap
}

func TestResolveTurn_LiveAppendsToActiveBranch(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-1")

	placement, err := engine.ResolveTurn(context.Background(), "session-1", models.TurnRequest{
		Message: "show me revenue by region",
	})
	require.NoError(t, err)

	assert.Equal(t, models.MainBranch, placement.BranchName)
	assert.False(t, placement.Forked)
}

func TestResolveTurn_PinnedAtHeadDoesNotFork(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-2")

	head := 1
	placement, err := engine.ResolveTurn(context.Background(), "session-1", models.TurnRequest{
		Message:     "refine it",
		CursorIndex: &head,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MainBranch, placement.BranchName)
	assert.False(t, placement.Forked)
}

func TestResolveTurn_RewindAndEditForks(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-2")

	pin := 0
	placement, err := engine.ResolveTurn(context.Background(), "session-1", models.TurnRequest{
		Message:         "actually, show costs instead",
		CursorIndex:     &pin,
		EditOfMessageID: "msg-1",
	})
	require.NoError(t, err)

	require.True(t, placement.Forked)
	assert.Equal(t, models.MainBranch, placement.ForkedFrom)
	assert.Equal(t, 0, placement.ForkIndex)
	assert.True(t, strings.HasPrefix(placement.BranchName, "fork-"))

	// The superseded snapshot is tombstoned, not deleted.
	all, err := store.ListSnapshots(context.Background(), "session-1", models.MainBranch, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].IsActive)
	assert.False(t, all[1].IsActive)

	active, err := store.ListSnapshots(context.Background(), "session-1", models.MainBranch, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 0, active[0].Index)

	// The write cursor moved to the fork; its first snapshot lands at index 0.
	branch, err := store.ActiveBranch(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, placement.BranchName, branch)

	snap := appendSnapshot(t, store, "session-1", placement.BranchName, "msg-1-edit")
	assert.Equal(t, 0, snap.Index)
}

func TestResolveTurn_EditWithoutCursorPinsToMessageSnapshot(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-2")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-3")

	placement, err := engine.ResolveTurn(context.Background(), "session-1", models.TurnRequest{
		Message:         "edited question",
		EditOfMessageID: "msg-2",
	})
	require.NoError(t, err)

	require.True(t, placement.Forked)
	assert.Equal(t, 1, placement.ForkIndex)

	active, err := store.ListSnapshots(context.Background(), "session-1", models.MainBranch, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, 0, active[0].Index)
	assert.Equal(t, 1, active[1].Index)
}

func TestFork_NeverMutatesSourcePrefix(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	for i := 0; i < 5; i++ {
		appendSnapshot(t, store, "session-1", models.MainBranch, "msg-"+string(rune('a'+i)))
	}
	before, err := store.ListSnapshots(context.Background(), "session-1", models.MainBranch, true)
	require.NoError(t, err)

	pin := 2
	_, err = engine.ResolveTurn(context.Background(), "session-1", models.TurnRequest{
		Message:     "diverge here",
		CursorIndex: &pin,
	})
	require.NoError(t, err)

	after, err := store.ListSnapshots(context.Background(), "session-1", models.MainBranch, true)
	require.NoError(t, err)
	require.Len(t, after, 5)
	for i := 0; i <= pin; i++ {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Index, after[i].Index)
		assert.True(t, after[i].IsActive, "index %d must stay active", i)
	}
	for i := pin + 1; i < 5; i++ {
		assert.False(t, after[i].IsActive, "index %d must be tombstoned", i)
	}
}

func TestIndicesContiguousAcrossSendForkEdit(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	ctx := context.Background()

	branch := models.MainBranch
	msgSeq := 0
	send := func() {
		msgSeq++
		placement, err := engine.ResolveTurn(ctx, "session-1", models.TurnRequest{Message: "m"})
		require.NoError(t, err)
		branch = placement.BranchName
		appendSnapshot(t, store, "session-1", branch, "msg-"+string(rune('0'+msgSeq)))
	}
	forkAt := func(idx int) {
		msgSeq++
		engine.now = func() time.Time { return time.Unix(1700000000+int64(msgSeq), 0) }
		placement, err := engine.ResolveTurn(ctx, "session-1", models.TurnRequest{
			Message:     "m",
			CursorIndex: &idx,
		})
		require.NoError(t, err)
		branch = placement.BranchName
		appendSnapshot(t, store, "session-1", branch, "msg-"+string(rune('0'+msgSeq)))
	}

	send()
	send()
	send()
	forkAt(1)
	send()
	forkAt(0)
	send()

	// Every branch's indices, tombstoned rows included, are 0..len-1.
	seen := map[string]bool{models.MainBranch: true}
	for name := range store.branches["session-1"] {
		seen[name] = true
	}
	for name := range seen {
		snaps, err := store.ListSnapshots(ctx, "session-1", name, true)
		require.NoError(t, err)
		for i, s := range snaps {
			assert.Equal(t, i, s.Index, "branch %s has a gap at position %d", name, i)
		}
	}
}

func TestBranchFamily(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	ctx := context.Background()

	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-2")

	pin := 0
	placement, err := engine.ResolveTurn(ctx, "session-1", models.TurnRequest{
		Message:     "another take",
		CursorIndex: &pin,
	})
	require.NoError(t, err)
	appendSnapshot(t, store, "session-1", placement.BranchName, "msg-2")

	refs, err := engine.BranchFamily(ctx, "session-1", "msg-2")
	require.NoError(t, err)
	require.Len(t, refs, 2)

	byBranch := map[string]models.BranchRef{}
	for _, r := range refs {
		byBranch[r.BranchName] = r
	}
	assert.False(t, byBranch[models.MainBranch].IsActive)
	assert.Equal(t, 1, byBranch[models.MainBranch].SnapshotIndex)
	assert.True(t, byBranch[placement.BranchName].IsActive)
	assert.Equal(t, 0, byBranch[placement.BranchName].SnapshotIndex)
}

func TestCreateFork_RetriesNameCollision(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	ctx := context.Background()

	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-1")
	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-2")

	// Occupy the name the first attempt will pick.
	require.NoError(t, store.CreateBranch(ctx, "session-1", "fork-1700000000000", models.MainBranch, 0))

	pin := 0
	placement, err := engine.ResolveTurn(ctx, "session-1", models.TurnRequest{
		Message:     "diverge",
		CursorIndex: &pin,
	})
	require.NoError(t, err)
	assert.Equal(t, "fork-1700000000001", placement.BranchName)
}

func TestHead(t *testing.T) {
	engine, store := newTestEngine(t)
	store.EnsureSession("session-1")
	ctx := context.Background()

	_, err := engine.Head(ctx, "session-1", models.MainBranch)
	assert.ErrorIs(t, err, ErrEmptyBranch)

	appendSnapshot(t, store, "session-1", models.MainBranch, "msg-1")
	snap := appendSnapshot(t, store, "session-1", models.MainBranch, "msg-2")

	head, err := engine.Head(ctx, "session-1", models.MainBranch)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, head.ID)
	assert.Equal(t, 1, head.Index)
}
