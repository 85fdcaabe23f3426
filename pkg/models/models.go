// Package models contains request/response models and business domain types.
package models

import (
	"github.com/loomhq/loom/ent"
)

// MainBranch is the branch every session starts with. It always exists,
// created empty alongside the session.
const MainBranch = "main"

// CreateSessionRequest contains fields for creating a new conversation session.
type CreateSessionRequest struct {
	SessionID string `json:"session_id"`
	Author    string `json:"author,omitempty"`
}

// TurnRequest is the inbound payload that opens an orchestration stream.
// CurrentUIContent, when present, is the client's best-known rendering of
// the prior snapshot and is handed to the merge resolver as the previous
// document. EditOfMessageID marks the turn as an edit of a prior user
// message; together with CursorIndex it drives forking.
type TurnRequest struct {
	Message          string `json:"message"`
	CurrentUIContent string `json:"current_ui_content,omitempty"`
	BranchName       string `json:"branch_name,omitempty"`
	CursorIndex      *int   `json:"cursor_index,omitempty"`
	EditOfMessageID  string `json:"edit_of_message_id,omitempty"`
}

// CreateMessageRequest contains fields for recording a user turn.
type CreateMessageRequest struct {
	SessionID    string `json:"session_id"`
	Content      string `json:"content"`
	Author       string `json:"author,omitempty"`
	EditedFromID string `json:"edited_from_id,omitempty"`
}

// CreateSnapshotRequest contains fields for committing a UI snapshot.
// SnapshotIndex is assigned by the store, never by the caller — the append
// must observe the branch's current length before writing.
type CreateSnapshotRequest struct {
	SessionID    string         `json:"session_id"`
	MessageID    string         `json:"message_id"`
	BranchName   string         `json:"branch_name"`
	Content      string         `json:"content"`
	LayoutIntent string         `json:"layout_intent"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Snapshot metadata keys written by the orchestrator.
const (
	MetaMergeAction    = "merge_action"
	MetaMergeAmbiguous = "merge_ambiguous"
	MetaSummary        = "summary"
	MetaToolCalls      = "tool_calls"
)

// BranchSummary describes one branch for listing endpoints.
type BranchSummary struct {
	Name            string  `json:"name"`
	SnapshotCount   int     `json:"snapshot_count"`
	ActiveCount     int     `json:"active_count"`
	ParentBranch    *string `json:"parent_branch,omitempty"`
	ForkedFromIndex *int    `json:"forked_from_index,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// BranchRef points at the snapshot answering a given message on one branch.
// The set of BranchRefs for a message is its "branch family" — the UI
// affordance cycles among them.
type BranchRef struct {
	BranchName    string `json:"branch_name"`
	SnapshotID    string `json:"snapshot_id"`
	SnapshotIndex int    `json:"snapshot_index"`
	IsActive      bool   `json:"is_active"`
}

// SessionListResponse contains a paginated session list.
type SessionListResponse struct {
	Sessions   []*ent.ConversationSession `json:"sessions"`
	TotalCount int                        `json:"total_count"`
	Limit      int                        `json:"limit"`
	Offset     int                        `json:"offset"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	// Search is matched against session titles and message content using
	// the full-text indexes.
	Search         string `json:"search,omitempty"`
	Author         string `json:"author,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

// CreateEventRequest contains fields for persisting a dashboard event.
type CreateEventRequest struct {
	SessionID string         `json:"session_id"`
	Channel   string         `json:"channel"`
	Payload   map[string]any `json:"payload"`
}
