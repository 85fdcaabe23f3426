package events

import (
	"context"

	"github.com/loomhq/loom/pkg/services"
)

// EventServiceAdapter adapts services.EventService to the CatchupQuerier
// interface consumed by the ConnectionManager.
type EventServiceAdapter struct {
	svc *services.EventService
}

// NewEventServiceAdapter wraps an EventService for catchup queries.
func NewEventServiceAdapter(svc *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{svc: svc}
}

// CatchupEvents implements CatchupQuerier.
func (a *EventServiceAdapter) CatchupEvents(ctx context.Context, channel string, afterID int64, limit int) ([]CatchupEvent, error) {
	rows, err := a.svc.GetCatchupEvents(ctx, channel, afterID, limit)
	if err != nil {
		return nil, err
	}

	events := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, CatchupEvent{
			ID:      row.ID,
			Payload: row.Payload,
		})
	}
	return events, nil
}
