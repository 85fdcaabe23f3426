// Package stream defines the wire contract between the orchestrator and
// the client: a closed tagged union of turn events, framed as server-sent
// events on a long-lived response.
//
// Ordering invariants per turn:
//
//	session      — first, and only when the turn created a new conversation
//	ui_complete  — mutually exclusive with text per turn, precedes done
//	error        — at most one per turn; a failed turn carries error then
//	               done, so the turn boundary is still observable
//	done         — always last; a stream that closes without done failed
//	               at the transport level and committed nothing
//
// Consumers must treat unknown event types as ignorable (decoded as
// TypeUnknown), never as fatal — the union is forward-compatible.
package stream

import "github.com/loomhq/loom/pkg/decision"

// EventType discriminates StreamEvent payloads.
type EventType string

const (
	TypeSession        EventType = "session"
	TypeThinking       EventType = "thinking"
	TypeToolCall       EventType = "tool_call"
	TypeData           EventType = "data"
	TypeUIAction       EventType = "ui_action"
	TypeSummaryMessage EventType = "summary_message"
	TypeUIComplete     EventType = "ui_complete"
	TypeText           EventType = "text"
	TypeTitleUpdate    EventType = "title_update"
	TypeDone           EventType = "done"
	TypeError          EventType = "error"

	// TypeUnknown is the decode-side fallback for event types this build
	// does not know. It never appears on the wire.
	TypeUnknown EventType = "unknown"
)

// SessionPayload announces a newly created conversation. Emitted as the
// first event of the stream that created it.
type SessionPayload struct {
	Type      EventType `json:"type"` // always TypeSession
	SessionID string    `json:"session_id"`
	CreatedAt string    `json:"created_at"` // RFC3339Nano
}

// ThinkingPayload carries incremental reasoning status for the client's
// thinking indicator. Transient — never persisted.
type ThinkingPayload struct {
	Type EventType `json:"type"` // always TypeThinking
	Text string    `json:"text"`
}

// ToolCallPayload announces one business-system call the engine requested.
type ToolCallPayload struct {
	Type       EventType      `json:"type"` // always TypeToolCall
	TargetID   string         `json:"target_id"`
	Reason     string         `json:"reason,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// DataPayload carries the fetched result of a tool call, so the client can
// show intermediate progress before the final artifact lands.
type DataPayload struct {
	Type     EventType `json:"type"` // always TypeData
	TargetID string    `json:"target_id"`
	Summary  string    `json:"summary,omitempty"`
	RowCount int       `json:"row_count,omitempty"`
}

// UIActionPayload is the resolver's authoritative merge decision for the
// turn. The client never re-derives it.
type UIActionPayload struct {
	Type      EventType `json:"type"`   // always TypeUIAction
	Action    string    `json:"action"` // NEW, ADD, MODIFY, REPLACE
	Ambiguous bool      `json:"ambiguous,omitempty"`
}

// SummaryMessagePayload is the human-readable summary for a ui/form turn,
// shown while the artifact itself is collapsed.
type SummaryMessagePayload struct {
	Type EventType `json:"type"` // always TypeSummaryMessage
	Text string    `json:"text"`
}

// UICompletePayload delivers the final, already-merged UI document.
type UICompletePayload struct {
	Type          EventType             `json:"type"` // always TypeUIComplete
	Content       string                `json:"content"`
	LayoutIntent  decision.LayoutIntent `json:"layout_intent"`
	BranchName    string                `json:"branch_name"`
	SnapshotID    string                `json:"snapshot_id"`
	SnapshotIndex int                   `json:"snapshot_index"`
}

// TextPayload is one chunk of a plain-text answer.
type TextPayload struct {
	Type  EventType `json:"type"` // always TypeText
	Delta string    `json:"delta"`
}

// TitleUpdatePayload carries a freshly generated session title.
type TitleUpdatePayload struct {
	Type      EventType `json:"type"` // always TypeTitleUpdate
	SessionID string    `json:"session_id"`
	Title     string    `json:"title"`
}

// DonePayload closes a successful stream.
type DonePayload struct {
	Type      EventType `json:"type"` // always TypeDone
	MessageID string    `json:"message_id"`
}

// ErrorPayload reports a turn-level failure. Capacity errors keep their
// distinct kinds so the client can avoid auto-retry storms.
type ErrorPayload struct {
	Type               EventType          `json:"type"` // always TypeError
	Kind               decision.ErrorKind `json:"kind"`
	Message            string             `json:"message"`
	ClarifyingQuestion string             `json:"clarifying_question,omitempty"`
	Suggestions        []string           `json:"suggestions,omitempty"`
}
