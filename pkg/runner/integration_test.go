package runner

import (
	"context"
	"testing"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/services"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enqueueRun(t *testing.T, runService *services.RunService, threadService *services.ThreadService) string {
	t.Helper()

	th, err := threadService.CreateThread(context.Background(), models.CreateThreadRequest{})
	require.NoError(t, err)
	run, err := runService.CreateRun(context.Background(), models.CreateRunRequest{
		ThreadID: th.ID,
		Model:    "gpt-4o",
	})
	require.NoError(t, err)
	return run.ID
}

func TestWorker_ProcessesRunEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	threadService := services.NewThreadService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	runID := enqueueRun(t, runService, threadService)

	pool := &WorkerPool{activeRuns: make(map[string]context.CancelFunc)}
	w := NewWorker("worker-0", "instance-1", runService, eventService, testQueueConfig(), 10*time.Millisecond, NewStubExecutor(), pool, nil)

	require.NoError(t, w.pollAndProcess(ctx))

	run, err := runService.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)
	assert.NotNil(t, run.CompletedAt)
	assert.Equal(t, "instance-1", *run.InstanceID)

	h := w.Health()
	assert.Equal(t, 1, h.RunsProcessed)

	// Queue drained.
	assert.ErrorIs(t, w.pollAndProcess(ctx), services.ErrNoRunsAvailable)
}

func TestWorker_AtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	threadService := services.NewThreadService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	enqueueRun(t, runService, threadService)
	claimed, err := runService.ClaimNextPending(ctx, "other-instance")
	require.NoError(t, err)
	_ = claimed

	cfg := testQueueConfig()
	cfg.MaxConcurrentRuns = 1

	pool := &WorkerPool{activeRuns: make(map[string]context.CancelFunc)}
	w := NewWorker("worker-0", "instance-1", runService, eventService, cfg, time.Minute, NewStubExecutor(), pool, nil)

	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrAtCapacity)
}

// funcExecutor adapts a function into a RunExecutor.
type funcExecutor struct {
	fn func(ctx context.Context, run *ent.AgentRun) *ExecutionResult
}

func (e *funcExecutor) Execute(ctx context.Context, run *ent.AgentRun) *ExecutionResult {
	return e.fn(ctx, run)
}

func TestWorker_TerminalPublishSurvivesFinalizeFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	threadService := services.NewThreadService(client.Client)
	eventService := services.NewEventService(client.Client)
	publisher := events.NewEventPublisher(client.DB())
	ctx := context.Background()

	runID := enqueueRun(t, runService, threadService)

	// The run row disappears mid-execution, so the terminal write fails.
	exec := &funcExecutor{fn: func(_ context.Context, run *ent.AgentRun) *ExecutionResult {
		require.NoError(t, client.Client.AgentRun.DeleteOneID(run.ID).Exec(context.Background()))
		return &ExecutionResult{Status: agentrun.StatusCompleted}
	}}

	pool := &WorkerPool{activeRuns: make(map[string]context.CancelFunc)}
	w := NewWorker("worker-0", "instance-1", runService, eventService, testQueueConfig(), time.Minute, exec, pool, publisher)

	require.Error(t, w.pollAndProcess(ctx))

	// Viewers still get the terminal marker on the run channel.
	evts, err := eventService.GetRunEvents(ctx, runID)
	require.NoError(t, err)
	var terminal bool
	for _, evt := range evts {
		if evt.Payload["type"] == events.EventTypeRunStatus &&
			evt.Payload["status"] == string(agentrun.StatusCompleted) {
			terminal = true
		}
	}
	assert.True(t, terminal, "terminal run.status never reached the buffer")
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	threadService := services.NewThreadService(client.Client)
	ctx := context.Background()

	runID := enqueueRun(t, runService, threadService)
	_, err := runService.ClaimNextPending(ctx, "instance-1")
	require.NoError(t, err)

	// A run owned by another instance is left alone.
	otherID := enqueueRun(t, runService, threadService)
	_, err = runService.ClaimNextPending(ctx, "instance-2")
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, runService, "instance-1"))

	run, err := runService.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, run.Status)
	assert.Contains(t, *run.ErrorMessage, "restarted")

	other, err := runService.GetRun(ctx, otherID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, other.Status)
}

func TestOrphanDetection_RecoverStaleRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	threadService := services.NewThreadService(client.Client)
	ctx := context.Background()

	runID := enqueueRun(t, runService, threadService)
	_, err := runService.ClaimNextPending(ctx, "dead-instance")
	require.NoError(t, err)

	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Millisecond
	time.Sleep(10 * time.Millisecond)

	pool := &WorkerPool{
		runs:       runService,
		config:     cfg,
		activeRuns: make(map[string]context.CancelFunc),
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	run, err := runService.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, run.Status)
	assert.Contains(t, *run.ErrorMessage, "no heartbeat")

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}
