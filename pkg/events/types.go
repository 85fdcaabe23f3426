// Package events provides real-time dashboard event delivery via WebSocket
// and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// The turn stream itself travels over the per-request SSE response; these
// events are the side channel that keeps dashboards and other open tabs
// current: turn lifecycle, committed snapshots, forks and title updates.
// Persistent events are written to the events table in the same transaction
// as the NOTIFY, so a reconnecting client can replay what it missed by ID.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Turn lifecycle on the session channel.
	EventTypeTurnStarted   = "turn.started"
	EventTypeTurnCompleted = "turn.completed"
	EventTypeTurnFailed    = "turn.failed"

	// A snapshot was committed to a branch.
	EventTypeSnapshotCreated = "snapshot.created"

	// A fork diverged from an existing branch.
	EventTypeBranchForked = "branch.forked"

	// Session lifecycle.
	EventTypeSessionCreated = "session.created"
	EventTypeTitleUpdated   = "title.updated"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Turn progress ticks while the reasoning engine works. High
	// frequency, ephemeral; the SSE stream is the authoritative copy.
	EventTypeTurnProgress = "turn.progress"
)

// GlobalSessionsChannel is the channel for session-level events.
// The session list page subscribes to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
