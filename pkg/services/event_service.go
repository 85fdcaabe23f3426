package services

import (
	"context"
	"fmt"
	"time"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/ent/event"
	"github.com/loomhq/loom/pkg/models"
)

// EventService persists dashboard events for WebSocket catchup.
// Live delivery goes through the publisher's pg_notify; this store lets a
// reconnecting dashboard replay everything it missed since its last event ID.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent persists an event and returns it with its assigned ID.
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Channel == "" {
		return nil, NewValidationError("channel", "required")
	}
	if req.Payload == nil {
		return nil, NewValidationError("payload", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ev, err := s.client.Event.Create().
		SetSessionID(req.SessionID).
		SetChannel(req.Channel).
		SetPayload(req.Payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return ev, nil
}

// GetCatchupEvents returns events on a channel with ID greater than afterID,
// oldest first, capped at limit.
func (s *EventService) GetCatchupEvents(httpCtx context.Context, channel string, afterID int64, limit int) ([]*ent.Event, error) {
	if channel == "" {
		return nil, NewValidationError("channel", "required")
	}
	if limit <= 0 || limit > 1000 {
		limit = 200
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(afterID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catchup events: %w", err)
	}
	return events, nil
}

// DeleteEventsBefore removes events older than the cutoff. Called by the
// retention sweep; dashboard catchup never reaches that far back.
func (s *EventService) DeleteEventsBefore(httpCtx context.Context, cutoff time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events: %w", err)
	}
	return n, nil
}
