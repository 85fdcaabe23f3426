package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes dashboard events.
// Persistent events are stored in the events table then broadcast via NOTIFY
// in one transaction; transient events are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct - see payloads.go.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishTurnStarted persists and broadcasts a turn.started event.
func (p *EventPublisher) PublishTurnStarted(ctx context.Context, sessionID string, payload TurnStartedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TurnStartedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON)
}

// PublishTurnCompleted persists a turn.completed event to the session channel
// and broadcasts a transient copy to the global sessions channel so list
// pages can bump last-activity without a per-session subscription.
// Both publishes are best-effort; the first error encountered is returned.
func (p *EventPublisher) PublishTurnCompleted(ctx context.Context, sessionID string, payload TurnCompletedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TurnCompletedPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish turn.completed to session channel",
			"session_id", sessionID, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish turn.completed to global channel",
			"session_id", sessionID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishTurnFailed persists and broadcasts a turn.failed event.
func (p *EventPublisher) PublishTurnFailed(ctx context.Context, sessionID string, payload TurnFailedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TurnFailedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON)
}

// PublishSnapshotCreated persists and broadcasts a snapshot.created event.
func (p *EventPublisher) PublishSnapshotCreated(ctx context.Context, sessionID string, payload SnapshotCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SnapshotCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON)
}

// PublishBranchForked persists and broadcasts a branch.forked event.
func (p *EventPublisher) PublishBranchForked(ctx context.Context, sessionID string, payload BranchForkedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal BranchForkedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON)
}

// PublishSessionCreated persists a session.created event and broadcasts a
// transient copy to the global sessions channel.
func (p *EventPublisher) PublishSessionCreated(ctx context.Context, sessionID string, payload SessionCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionCreatedPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON); err != nil {
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// PublishTitleUpdated persists a title.updated event and broadcasts a
// transient copy to the global sessions channel.
func (p *EventPublisher) PublishTitleUpdated(ctx context.Context, sessionID string, payload TitleUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TitleUpdatedPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON); err != nil {
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// PublishTurnProgress broadcasts a turn.progress transient event (no DB
// persistence). Lost on disconnect; the SSE stream carries the real thing.
func (p *EventPublisher) PublishTurnProgress(ctx context.Context, sessionID string, payload TurnProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TurnProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, SessionChannel(sessionID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional,
// held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, sessionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		sessionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY payload carries db_event_id so clients can track their catchup
	// position.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields. The client fetches the full
// event from the database by db_event_id.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
