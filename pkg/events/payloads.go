package events

// TurnStartedPayload is the payload for turn.started events.
type TurnStartedPayload struct {
	Type       string `json:"type"` // always EventTypeTurnStarted
	SessionID  string `json:"session_id"`
	MessageID  string `json:"message_id"`
	BranchName string `json:"branch_name"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// TurnCompletedPayload is the payload for turn.completed events.
// SnapshotID is empty for text-only turns, which commit nothing.
type TurnCompletedPayload struct {
	Type           string `json:"type"` // always EventTypeTurnCompleted
	SessionID      string `json:"session_id"`
	MessageID      string `json:"message_id"`
	BranchName     string `json:"branch_name"`
	SnapshotID     string `json:"snapshot_id,omitempty"`
	ResponseFormat string `json:"response_format"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// TurnFailedPayload is the payload for turn.failed events.
type TurnFailedPayload struct {
	Type      string `json:"type"` // always EventTypeTurnFailed
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	Kind      string `json:"kind"` // error taxonomy kind
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// SnapshotCreatedPayload is the payload for snapshot.created events.
type SnapshotCreatedPayload struct {
	Type          string `json:"type"` // always EventTypeSnapshotCreated
	SessionID     string `json:"session_id"`
	SnapshotID    string `json:"snapshot_id"`
	MessageID     string `json:"message_id"`
	BranchName    string `json:"branch_name"`
	SnapshotIndex int    `json:"snapshot_index"`
	LayoutIntent  string `json:"layout_intent"`
	MergeAction   string `json:"merge_action"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// BranchForkedPayload is the payload for branch.forked events.
type BranchForkedPayload struct {
	Type            string `json:"type"` // always EventTypeBranchForked
	SessionID       string `json:"session_id"`
	BranchName      string `json:"branch_name"`
	ParentBranch    string `json:"parent_branch"`
	ForkedFromIndex int    `json:"forked_from_index"`
	Timestamp       string `json:"timestamp"` // RFC3339Nano
}

// SessionCreatedPayload is the payload for session.created events.
type SessionCreatedPayload struct {
	Type      string `json:"type"` // always EventTypeSessionCreated
	SessionID string `json:"session_id"`
	Author    string `json:"author,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// TitleUpdatedPayload is the payload for title.updated events.
// Published once the first completed turn yields a generated title.
type TitleUpdatedPayload struct {
	Type      string `json:"type"` // always EventTypeTitleUpdated
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// TurnProgressPayload is the payload for turn.progress transient events.
type TurnProgressPayload struct {
	Type      string `json:"type"` // always EventTypeTurnProgress
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	Phase     string `json:"phase"` // thinking, tool_call, merging
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
