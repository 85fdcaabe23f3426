package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/ent/branch"
	"github.com/loomhq/loom/ent/uisnapshot"
	"github.com/loomhq/loom/pkg/models"
)

const (
	// appendRetries bounds how many times an append re-reads the branch
	// head after losing the unique-index race.
	appendRetries = 3

	// snapshotWarnThreshold is the per-branch depth past which we log.
	// Nothing is trimmed; the branch family view just gets heavy.
	snapshotWarnThreshold = 50
)

// SnapshotService manages UI snapshots and the branches that order them.
type SnapshotService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(client *ent.Client, logger *slog.Logger) *SnapshotService {
	return &SnapshotService{
		client: client,
		logger: logger.With("service", "snapshots"),
	}
}

// CreateSnapshot appends a snapshot to a branch. The index is assigned here:
// the next contiguous position counted over all rows on the branch, active or
// not. A unique index on (session_id, branch_name, snapshot_index) rejects
// concurrent appends to the same position; the loser re-reads and retries.
func (s *SnapshotService) CreateSnapshot(httpCtx context.Context, req models.CreateSnapshotRequest) (*ent.UISnapshot, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.MessageID == "" {
		return nil, NewValidationError("message_id", "required")
	}
	if req.BranchName == "" {
		return nil, NewValidationError("branch_name", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	for attempt := 0; attempt < appendRetries; attempt++ {
		// Index counts tombstoned rows too so positions stay contiguous
		// across forks.
		count, err := s.client.UISnapshot.Query().
			Where(
				uisnapshot.SessionIDEQ(req.SessionID),
				uisnapshot.BranchNameEQ(req.BranchName),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count branch snapshots: %w", err)
		}

		var parentID string
		if count > 0 {
			parent, err := s.client.UISnapshot.Query().
				Where(
					uisnapshot.SessionIDEQ(req.SessionID),
					uisnapshot.BranchNameEQ(req.BranchName),
					uisnapshot.SnapshotIndexEQ(count-1),
				).
				Only(ctx)
			if err != nil && !ent.IsNotFound(err) {
				return nil, fmt.Errorf("failed to load branch head: %w", err)
			}
			if parent != nil {
				parentID = parent.ID
			}
		}

		builder := s.client.UISnapshot.Create().
			SetID(uuid.New().String()).
			SetSessionID(req.SessionID).
			SetMessageID(req.MessageID).
			SetBranchName(req.BranchName).
			SetContent(req.Content).
			SetLayoutIntent(uisnapshot.LayoutIntent(req.LayoutIntent)).
			SetSnapshotIndex(count).
			SetIsActive(true).
			SetCreatedAt(time.Now())
		if parentID != "" {
			builder = builder.SetParentID(parentID)
		}
		if req.Metadata != nil {
			builder = builder.SetMetadata(req.Metadata)
		}

		snap, err := builder.Save(ctx)
		if err == nil {
			if count+1 > snapshotWarnThreshold {
				s.logger.Warn("Branch snapshot count above threshold",
					"session_id", req.SessionID,
					"branch", req.BranchName,
					"count", count+1)
			}
			return snap, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create snapshot: %w", err)
		}
		// Lost the index race, re-read the head.
	}

	return nil, ErrBranchConflict
}

// GetSnapshot returns a snapshot by ID.
func (s *SnapshotService) GetSnapshot(httpCtx context.Context, snapshotID string) (*ent.UISnapshot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	snap, err := s.client.UISnapshot.Get(ctx, snapshotID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns a branch's snapshots in index order. Tombstoned rows
// are excluded unless includeInactive is set.
func (s *SnapshotService) ListSnapshots(httpCtx context.Context, sessionID, branchName string, includeInactive bool) ([]*ent.UISnapshot, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if branchName == "" {
		return nil, NewValidationError("branch_name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	query := s.client.UISnapshot.Query().
		Where(
			uisnapshot.SessionIDEQ(sessionID),
			uisnapshot.BranchNameEQ(branchName),
		)
	if !includeInactive {
		query = query.Where(uisnapshot.IsActiveEQ(true))
	}

	snaps, err := query.
		Order(ent.Asc(uisnapshot.FieldSnapshotIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}

// SnapshotsForMessage returns every snapshot answering a message across all
// branches, for branch family discovery. Tombstoned rows are included so the
// family view can show superseded lineages.
func (s *SnapshotService) SnapshotsForMessage(httpCtx context.Context, sessionID, messageID string) ([]*ent.UISnapshot, error) {
	if messageID == "" {
		return nil, NewValidationError("message_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	snaps, err := s.client.UISnapshot.Query().
		Where(
			uisnapshot.SessionIDEQ(sessionID),
			uisnapshot.MessageIDEQ(messageID),
		).
		Order(ent.Asc(uisnapshot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list message snapshots: %w", err)
	}
	return snaps, nil
}

// BranchHead returns the highest-index active snapshot on a branch, or
// ErrNotFound when the branch has no active snapshots.
func (s *SnapshotService) BranchHead(httpCtx context.Context, sessionID, branchName string) (*ent.UISnapshot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	snap, err := s.client.UISnapshot.Query().
		Where(
			uisnapshot.SessionIDEQ(sessionID),
			uisnapshot.BranchNameEQ(branchName),
			uisnapshot.IsActiveEQ(true),
		).
		Order(ent.Desc(uisnapshot.FieldSnapshotIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get branch head: %w", err)
	}
	return snap, nil
}

// DeactivateAfter tombstones every snapshot on a branch with an index
// strictly greater than afterIndex. Rows stay in place so indices remain
// contiguous; they simply drop out of the active view.
func (s *SnapshotService) DeactivateAfter(httpCtx context.Context, sessionID, branchName string, afterIndex int) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.UISnapshot.Update().
		Where(
			uisnapshot.SessionIDEQ(sessionID),
			uisnapshot.BranchNameEQ(branchName),
			uisnapshot.SnapshotIndexGT(afterIndex),
			uisnapshot.IsActiveEQ(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate snapshots: %w", err)
	}
	return n, nil
}

// CreateBranch records a branch. For forks, parentBranch and forkedFromIndex
// mark where the new line of history diverged.
func (s *SnapshotService) CreateBranch(httpCtx context.Context, sessionID, name, parentBranch string, forkedFromIndex int) (*ent.Branch, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.Branch.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetName(name).
		SetCreatedAt(time.Now())
	if parentBranch != "" {
		builder = builder.
			SetParentBranch(parentBranch).
			SetForkedFromIndex(forkedFromIndex)
	}

	b, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return b, nil
}

// ListBranches returns all branches for a session, oldest first.
func (s *SnapshotService) ListBranches(httpCtx context.Context, sessionID string) ([]*ent.Branch, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	branches, err := s.client.Branch.Query().
		Where(branch.SessionIDEQ(sessionID)).
		Order(ent.Asc(branch.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

// GetBranch returns a branch by session and name.
func (s *SnapshotService) GetBranch(httpCtx context.Context, sessionID, name string) (*ent.Branch, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	b, err := s.client.Branch.Query().
		Where(
			branch.SessionIDEQ(sessionID),
			branch.NameEQ(name),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return b, nil
}

// BranchFamily summarizes every branch of a session with its snapshot counts
// and fork point, for history visualizations.
func (s *SnapshotService) BranchFamily(httpCtx context.Context, sessionID string) ([]models.BranchSummary, error) {
	branches, err := s.ListBranches(httpCtx, sessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	summaries := make([]models.BranchSummary, 0, len(branches))
	for _, b := range branches {
		total, err := s.client.UISnapshot.Query().
			Where(
				uisnapshot.SessionIDEQ(sessionID),
				uisnapshot.BranchNameEQ(b.Name),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count snapshots for branch %s: %w", b.Name, err)
		}
		active, err := s.client.UISnapshot.Query().
			Where(
				uisnapshot.SessionIDEQ(sessionID),
				uisnapshot.BranchNameEQ(b.Name),
				uisnapshot.IsActiveEQ(true),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count active snapshots for branch %s: %w", b.Name, err)
		}

		summaries = append(summaries, models.BranchSummary{
			Name:            b.Name,
			SnapshotCount:   total,
			ActiveCount:     active,
			ParentBranch:    b.ParentBranch,
			ForkedFromIndex: b.ForkedFromIndex,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}
