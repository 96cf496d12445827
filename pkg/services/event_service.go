package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/event"
	"github.com/agentd-io/agentd/pkg/models"
)

// EventService manages the per-run response buffer rows backing stream
// catchup and replay.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent appends one buffer event. Normal publishing goes through
// EventPublisher (persist + NOTIFY in one transaction); this path exists
// for tooling and tests.
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.Event.Create().
		SetRunID(req.RunID).
		SetChannel(req.Channel).
		SetPayload(req.Payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return evt, nil
}

// GetEventsSince retrieves buffer events on a channel after the given id,
// in append order. limit <= 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// GetRunEvents retrieves all buffer events for a run in append order,
// across its channels.
func (s *EventService) GetRunEvents(ctx context.Context, runID string) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(event.RunIDEQ(runID)).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get run events: %w", err)
	}

	return events, nil
}

// CleanupRunEvents removes all buffer events for a run. Called after the
// terminal grace period, once the responses snapshot is on the run record.
func (s *EventService) CleanupRunEvents(ctx context.Context, runID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.RunIDEQ(runID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup run events: %w", err)
	}

	return count, nil
}

// CleanupOrphanedEvents removes events older than TTL — rows whose run died
// without the normal post-terminal cleanup.
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}

	return count, nil
}
