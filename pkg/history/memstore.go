package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/services"
)

// MemStore is an in-memory Store. It mirrors the database-backed semantics,
// including index assignment over tombstoned rows, and is used by tests and
// single-process embeddings that do not want a database.
type MemStore struct {
	mu       sync.Mutex
	snaps    map[string][]*Snapshot // session -> all snapshots, insertion order
	branches map[string]map[string]memBranch
	active   map[string]string
}

type memBranch struct {
	parent    string
	forkIndex int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		snaps:    make(map[string][]*Snapshot),
		branches: make(map[string]map[string]memBranch),
		active:   make(map[string]string),
	}
}

// EnsureSession registers a session with its main branch, mirroring what
// session creation does in the database.
func (m *MemStore) EnsureSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.branches[sessionID] == nil {
		m.branches[sessionID] = map[string]memBranch{models.MainBranch: {}}
		m.active[sessionID] = models.MainBranch
	}
}

func (m *MemStore) Append(_ context.Context, req models.CreateSnapshotRequest) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Index counts tombstoned rows too, matching the database store.
	count := 0
	var parentID *string
	for _, s := range m.snaps[req.SessionID] {
		if s.BranchName == req.BranchName {
			id := s.ID
			parentID = &id
			count++
		}
	}

	snap := &Snapshot{
		ID:           uuid.New().String(),
		SessionID:    req.SessionID,
		MessageID:    req.MessageID,
		BranchName:   req.BranchName,
		ParentID:     parentID,
		Content:      req.Content,
		LayoutIntent: req.LayoutIntent,
		Index:        count,
		Metadata:     req.Metadata,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	m.snaps[req.SessionID] = append(m.snaps[req.SessionID], snap)
	return snap, nil
}

func (m *MemStore) ListSnapshots(_ context.Context, sessionID, branchName string, includeInactive bool) ([]*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Snapshot
	for _, s := range m.snaps[sessionID] {
		if s.BranchName != branchName {
			continue
		}
		if !s.IsActive && !includeInactive {
			continue
		}
		c := *s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func (m *MemStore) SnapshotsForMessage(_ context.Context, sessionID, messageID string) ([]*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Snapshot
	for _, s := range m.snaps[sessionID] {
		if s.MessageID == messageID {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *MemStore) DeactivateAfter(_ context.Context, sessionID, branchName string, afterIndex int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, s := range m.snaps[sessionID] {
		if s.BranchName == branchName && s.Index > afterIndex && s.IsActive {
			s.IsActive = false
			n++
		}
	}
	return n, nil
}

func (m *MemStore) CreateBranch(_ context.Context, sessionID, name, parentBranch string, forkedFromIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.branches[sessionID] == nil {
		m.branches[sessionID] = make(map[string]memBranch)
	}
	if _, exists := m.branches[sessionID][name]; exists {
		return services.ErrAlreadyExists
	}
	m.branches[sessionID][name] = memBranch{parent: parentBranch, forkIndex: forkedFromIndex}
	return nil
}

func (m *MemStore) ActiveBranch(_ context.Context, sessionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.active[sessionID]; ok {
		return b, nil
	}
	return models.MainBranch, nil
}

func (m *MemStore) SetActiveBranch(_ context.Context, sessionID, branchName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active[sessionID] = branchName
	return nil
}
