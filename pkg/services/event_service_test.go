package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentd-io/agentd/pkg/models"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateAndGetSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, client.Client)
	channel := "agent_run:" + run.ID

	evt1, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		RunID:   run.ID,
		Channel: channel,
		Payload: map[string]any{"seq": 1},
	})
	require.NoError(t, err)

	evt2, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		RunID:   run.ID,
		Channel: channel,
		Payload: map[string]any{"seq": 2},
	})
	require.NoError(t, err)
	assert.Greater(t, evt2.ID, evt1.ID)

	t.Run("retrieves events after the given id in append order", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt2.ID, events[0].ID)
	})

	t.Run("retrieves all events for sinceID 0", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("respects limit", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("empty for a different channel", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, "agent_run:other", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupRunEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, client.Client)
	other := createTestRun(t, client.Client)

	for i := 0; i < 3; i++ {
		_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			RunID:   run.ID,
			Channel: "agent_run:" + run.ID,
			Payload: map[string]any{"seq": i},
		})
		require.NoError(t, err)
	}
	_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		RunID:   other.ID,
		Channel: "agent_run:" + other.ID,
		Payload: map[string]any{"seq": 0},
	})
	require.NoError(t, err)

	count, err := eventService.CleanupRunEvents(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// The other run's buffer is untouched.
	remaining, err := eventService.GetRunEvents(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestEventService_CleanupOrphanedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, client.Client)
	_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		RunID:   run.ID,
		Channel: "agent_run:" + run.ID,
		Payload: map[string]any{"seq": 0},
	})
	require.NoError(t, err)

	// Nothing is older than a day.
	count, err := eventService.CleanupOrphanedEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
