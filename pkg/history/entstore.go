package history

import (
	"context"
	"errors"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/services"
)

func isAlreadyExists(err error) bool {
	return errors.Is(err, services.ErrAlreadyExists)
}

// EntStore adapts the database service layer to the engine's Store interface.
type EntStore struct {
	snapshots *services.SnapshotService
	sessions  *services.SessionService
}

// NewEntStore creates a database-backed snapshot store.
func NewEntStore(snapshots *services.SnapshotService, sessions *services.SessionService) *EntStore {
	return &EntStore{snapshots: snapshots, sessions: sessions}
}

func fromEnt(s *ent.UISnapshot) *Snapshot {
	return &Snapshot{
		ID:           s.ID,
		SessionID:    s.SessionID,
		MessageID:    s.MessageID,
		BranchName:   s.BranchName,
		ParentID:     s.ParentID,
		Content:      s.Content,
		LayoutIntent: string(s.LayoutIntent),
		Index:        s.SnapshotIndex,
		Metadata:     s.Metadata,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
	}
}

func (s *EntStore) Append(ctx context.Context, req models.CreateSnapshotRequest) (*Snapshot, error) {
	snap, err := s.snapshots.CreateSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	return fromEnt(snap), nil
}

func (s *EntStore) ListSnapshots(ctx context.Context, sessionID, branchName string, includeInactive bool) ([]*Snapshot, error) {
	snaps, err := s.snapshots.ListSnapshots(ctx, sessionID, branchName, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]*Snapshot, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, fromEnt(snap))
	}
	return out, nil
}

func (s *EntStore) SnapshotsForMessage(ctx context.Context, sessionID, messageID string) ([]*Snapshot, error) {
	snaps, err := s.snapshots.SnapshotsForMessage(ctx, sessionID, messageID)
	if err != nil {
		return nil, err
	}
	out := make([]*Snapshot, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, fromEnt(snap))
	}
	return out, nil
}

func (s *EntStore) DeactivateAfter(ctx context.Context, sessionID, branchName string, afterIndex int) (int, error) {
	return s.snapshots.DeactivateAfter(ctx, sessionID, branchName, afterIndex)
}

func (s *EntStore) CreateBranch(ctx context.Context, sessionID, name, parentBranch string, forkedFromIndex int) error {
	_, err := s.snapshots.CreateBranch(ctx, sessionID, name, parentBranch, forkedFromIndex)
	return err
}

func (s *EntStore) ActiveBranch(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return "", err
	}
	return session.ActiveBranch, nil
}

func (s *EntStore) SetActiveBranch(ctx context.Context, sessionID, branchName string) error {
	return s.sessions.SetActiveBranch(ctx, sessionID, branchName)
}
