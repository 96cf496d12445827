package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/services"
	testdb "github.com/agentd-io/agentd/test/database"
)

func createPendingRun(t *testing.T, client *ent.Client) *ent.AgentRun {
	t.Helper()

	th, err := services.NewThreadService(client).CreateThread(context.Background(), models.CreateThreadRequest{})
	require.NoError(t, err)
	run, err := services.NewRunService(client).CreateRun(context.Background(), models.CreateRunRequest{
		ThreadID: th.ID,
		Model:    "gpt-4o",
	})
	require.NoError(t, err)
	return run
}

func TestService_RemovesExpiredBufferEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	run := createPendingRun(t, client.Client)
	channel := events.RunChannel(run.ID)

	// A row the normal post-terminal cleanup never reached.
	_, err := client.Event.Create().
		SetRunID(run.ID).
		SetChannel(channel).
		SetPayload(map[string]any{"seq": 0}).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		RunID:   run.ID,
		Channel: channel,
		Payload: map[string]any{"seq": 1},
	})
	require.NoError(t, err)

	svc := NewService(&config.EventsConfig{
		TTL:           24 * time.Hour,
		SweepInterval: time.Hour,
	}, eventService)
	svc.sweep()

	remaining, err := eventService.GetRunEvents(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)

	svc := NewService(&config.EventsConfig{
		TTL:           24 * time.Hour,
		SweepInterval: 10 * time.Millisecond,
	}, eventService)

	svc.Start(context.Background())
	// Second Start is a no-op.
	svc.Start(context.Background())

	time.Sleep(50 * time.Millisecond)
	svc.Stop()

	// Stop after Stop must not panic or block.
	svc.Stop()
}
