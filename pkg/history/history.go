// Package history implements the branch/fork version model for generated UI
// snapshots. Each session owns named branches; a branch is an ordered,
// append-only lineage of snapshots. Editing a prior message or diverging from
// a historical snapshot forks a new branch instead of rewriting the old one.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/loomhq/loom/pkg/models"
)

// ErrEmptyBranch is returned when a branch has no active snapshots.
var ErrEmptyBranch = errors.New("branch has no active snapshots")

// Snapshot is the store-independent view of one committed UI version.
type Snapshot struct {
	ID           string
	SessionID    string
	MessageID    string
	BranchName   string
	ParentID     *string
	Content      string
	LayoutIntent string
	Index        int
	Metadata     map[string]any
	IsActive     bool
	CreatedAt    time.Time
}

// Store is the persistence surface the engine needs. Append must assign the
// snapshot index itself, serialized per branch, so two racing turns cannot
// land on the same position.
type Store interface {
	Append(ctx context.Context, req models.CreateSnapshotRequest) (*Snapshot, error)
	ListSnapshots(ctx context.Context, sessionID, branchName string, includeInactive bool) ([]*Snapshot, error)
	SnapshotsForMessage(ctx context.Context, sessionID, messageID string) ([]*Snapshot, error)
	DeactivateAfter(ctx context.Context, sessionID, branchName string, afterIndex int) (int, error)
	CreateBranch(ctx context.Context, sessionID, name, parentBranch string, forkedFromIndex int) error
	ActiveBranch(ctx context.Context, sessionID string) (string, error)
	SetActiveBranch(ctx context.Context, sessionID, branchName string) error
}

// TurnPlacement says where a new turn's snapshot will land.
type TurnPlacement struct {
	BranchName string
	Forked     bool
	ForkedFrom string
	ForkIndex  int
}

// Engine drives branch resolution and forking for incoming turns.
type Engine struct {
	store     Store
	logger    *slog.Logger
	now       func() time.Time
	softLimit int
}

// NewEngine creates a history engine over the given store.
func NewEngine(store Store, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger.With("component", "history"),
		now:    time.Now,
	}
}

// SetBranchSoftLimit sets the per-branch snapshot count past which Commit
// logs a warning. Zero disables the check. Branches are never truncated;
// the limit exists to surface runaway conversations in the logs.
func (e *Engine) SetBranchSoftLimit(n int) {
	e.softLimit = n
}

// ResolveTurn decides which branch the turn writes to. A fork happens when
// the request pins the cursor to a non-terminal index, or edits a message
// whose snapshot is not the branch head. Forking tombstones everything past
// the pin on the source branch, allocates a timestamp-named branch and moves
// the session's write cursor onto it. Indices 0..pin of the source branch are
// never touched.
func (e *Engine) ResolveTurn(ctx context.Context, sessionID string, req models.TurnRequest) (*TurnPlacement, error) {
	branchName := req.BranchName
	if branchName == "" {
		active, err := e.store.ActiveBranch(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve active branch: %w", err)
		}
		branchName = active
	}

	active, err := e.store.ListSnapshots(ctx, sessionID, branchName, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list branch snapshots: %w", err)
	}
	headIndex := -1
	if len(active) > 0 {
		headIndex = active[len(active)-1].Index
	}

	pin := -1
	switch {
	case req.CursorIndex != nil:
		pin = *req.CursorIndex
	case req.EditOfMessageID != "":
		// An edit without an explicit cursor pins to the snapshot the
		// original message produced on this branch.
		snaps, err := e.store.SnapshotsForMessage(ctx, sessionID, req.EditOfMessageID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up edited message snapshots: %w", err)
		}
		for _, s := range snaps {
			if s.BranchName == branchName && s.IsActive {
				pin = s.Index
				break
			}
		}
	}

	if pin < 0 || pin >= headIndex {
		// Live mode, or pinned at the head: append in place.
		return &TurnPlacement{BranchName: branchName}, nil
	}

	if _, err := e.store.DeactivateAfter(ctx, sessionID, branchName, pin); err != nil {
		return nil, fmt.Errorf("failed to deactivate superseded snapshots: %w", err)
	}

	forkName, err := e.createFork(ctx, sessionID, branchName, pin)
	if err != nil {
		return nil, err
	}
	if err := e.store.SetActiveBranch(ctx, sessionID, forkName); err != nil {
		return nil, fmt.Errorf("failed to switch active branch: %w", err)
	}

	e.logger.Info("Forked branch",
		"session_id", sessionID,
		"from", branchName,
		"at_index", pin,
		"branch", forkName)

	return &TurnPlacement{
		BranchName: forkName,
		Forked:     true,
		ForkedFrom: branchName,
		ForkIndex:  pin,
	}, nil
}

// createFork allocates a unique timestamp-derived branch name. A same-
// millisecond collision within one session just retries with the next tick.
func (e *Engine) createFork(ctx context.Context, sessionID, parent string, forkIndex int) (string, error) {
	ts := e.now().UnixMilli()
	for attempt := 0; attempt < 3; attempt++ {
		name := fmt.Sprintf("fork-%d", ts+int64(attempt))
		err := e.store.CreateBranch(ctx, sessionID, name, parent, forkIndex)
		if err == nil {
			return name, nil
		}
		if !isAlreadyExists(err) {
			return "", fmt.Errorf("failed to create fork branch: %w", err)
		}
	}
	return "", fmt.Errorf("failed to allocate a unique fork branch name for session %s", sessionID)
}

// Commit appends the completed turn's snapshot to its resolved branch.
func (e *Engine) Commit(ctx context.Context, req models.CreateSnapshotRequest) (*Snapshot, error) {
	snap, err := e.store.Append(ctx, req)
	if err != nil {
		return nil, err
	}
	if e.softLimit > 0 && snap.Index+1 > e.softLimit {
		e.logger.Warn("Branch exceeds snapshot soft limit",
			"session_id", snap.SessionID,
			"branch", snap.BranchName,
			"snapshots", snap.Index+1,
			"soft_limit", e.softLimit)
	}
	return snap, nil
}

// BranchFamily returns, for one message, the snapshot answering it on every
// branch that has one. The client affordance cycles among these, jumping to
// the matching index on the selected branch.
func (e *Engine) BranchFamily(ctx context.Context, sessionID, messageID string) ([]models.BranchRef, error) {
	snaps, err := e.store.SnapshotsForMessage(ctx, sessionID, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list message snapshots: %w", err)
	}
	refs := make([]models.BranchRef, 0, len(snaps))
	for _, s := range snaps {
		refs = append(refs, models.BranchRef{
			BranchName:    s.BranchName,
			SnapshotID:    s.ID,
			SnapshotIndex: s.Index,
			IsActive:      s.IsActive,
		})
	}
	return refs, nil
}

// BaseContent returns the UI document the placed turn builds on: the head of
// the target branch, or, right after a fork, the head of the source branch
// (the pinned snapshot, since everything past it was just tombstoned). An
// empty branch yields an empty document.
func (e *Engine) BaseContent(ctx context.Context, sessionID string, p *TurnPlacement) (string, error) {
	branch := p.BranchName
	if p.Forked {
		branch = p.ForkedFrom
	}
	head, err := e.Head(ctx, sessionID, branch)
	if errors.Is(err, ErrEmptyBranch) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return head.Content, nil
}

// Head returns the newest active snapshot on a branch.
func (e *Engine) Head(ctx context.Context, sessionID, branchName string) (*Snapshot, error) {
	snaps, err := e.store.ListSnapshots(ctx, sessionID, branchName, false)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, ErrEmptyBranch
	}
	return snaps[len(snaps)-1], nil
}
