// Package reason wraps the generative reasoning engine that produces
// orchestration decisions. The orchestrator calls Decide, executes any
// business-system calls the decision asks for, and calls Decide again with
// the results until the decision carries no further calls.
package reason

import (
	"context"
	"encoding/json"
)

// HistoryEntry is one prior turn given to the engine as context.
type HistoryEntry struct {
	Message string `json:"message"`
	Summary string `json:"summary,omitempty"`
}

// ToolResult carries one executed API call's outcome back into the turn.
type ToolResult struct {
	TargetID string          `json:"targetId"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// TurnInput is everything the engine sees for one decision round.
type TurnInput struct {
	Message     string
	History     []HistoryEntry
	CurrentUI   string
	ToolCatalog string
	ToolResults []ToolResult
}

// Client is the reasoning-engine surface the orchestrator consumes.
type Client interface {
	// Decide returns the raw decision JSON for one round. Schema
	// validation is the caller's job; a malformed decision is a
	// generation error, not a transport error.
	Decide(ctx context.Context, input TurnInput) (json.RawMessage, error)

	// GenerateTitle produces a short session title from the first
	// exchange of a conversation.
	GenerateTitle(ctx context.Context, firstMessage string) (string, error)
}
