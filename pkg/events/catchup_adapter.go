package events

import (
	"context"

	"github.com/agentd-io/agentd/pkg/services"
)

// EventServiceAdapter adapts services.EventService to the CatchupQuerier
// interface, keeping the events package free of a services dependency in
// its core types.
type EventServiceAdapter struct {
	service *services.EventService
}

// NewEventServiceAdapter wraps an EventService for catchup queries.
func NewEventServiceAdapter(service *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{service: service}
}

// GetCatchupEvents returns buffer events on a channel after sinceID.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := a.service.GetEventsSince(ctx, channel, sinceID, limit)
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
