package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/models"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	th := createTestThread(t, client.Client)

	t.Run("enqueues pending run", func(t *testing.T) {
		run, err := runService.CreateRun(ctx, models.CreateRunRequest{
			ThreadID:        th.ID,
			Model:           "gpt-4o",
			ProcessorConfig: map[string]any{"native_tool_calling": true},
		})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusPending, run.Status)
		assert.Equal(t, th.ID, run.ThreadID)
		assert.Nil(t, run.StartedAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := runService.CreateRun(ctx, models.CreateRunRequest{Model: "gpt-4o"})
		assert.True(t, IsValidationError(err))

		_, err = runService.CreateRun(ctx, models.CreateRunRequest{ThreadID: th.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown thread", func(t *testing.T) {
		_, err := runService.CreateRun(ctx, models.CreateRunRequest{
			ThreadID: "missing",
			Model:    "gpt-4o",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_ClaimNextPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("returns ErrNoRunsAvailable on empty queue", func(t *testing.T) {
		_, err := runService.ClaimNextPending(ctx, "worker-1")
		assert.ErrorIs(t, err, ErrNoRunsAvailable)
	})

	t.Run("claims oldest pending run first", func(t *testing.T) {
		first := createTestRun(t, client.Client)
		time.Sleep(10 * time.Millisecond)
		second := createTestRun(t, client.Client)

		claimed, err := runService.ClaimNextPending(ctx, "worker-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, agentrun.StatusRunning, claimed.Status)
		assert.Equal(t, "worker-1", *claimed.InstanceID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)

		claimed2, err := runService.ClaimNextPending(ctx, "worker-2")
		require.NoError(t, err)
		assert.Equal(t, second.ID, claimed2.ID)

		_, err = runService.ClaimNextPending(ctx, "worker-1")
		assert.ErrorIs(t, err, ErrNoRunsAvailable)
	})
}

func TestRunService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client)
	claimed, err := runService.ClaimNextPending(ctx, "worker-1")
	require.NoError(t, err)

	before := *claimed.LastHeartbeatAt
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, runService.Heartbeat(ctx, claimed.ID, "worker-1"))

	run, err := runService.GetRun(ctx, claimed.ID)
	require.NoError(t, err)
	assert.True(t, run.LastHeartbeatAt.After(before))

	// Wrong instance: silently a no-op.
	require.NoError(t, runService.Heartbeat(ctx, claimed.ID, "worker-9"))
	run2, err := runService.GetRun(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, run.LastHeartbeatAt.UnixNano(), run2.LastHeartbeatAt.UnixNano())
}

func TestRunService_FinalizeRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client)
	claimed, err := runService.ClaimNextPending(ctx, "worker-1")
	require.NoError(t, err)

	responses := []map[string]any{
		{"type": "assistant", "content": map[string]any{"role": "assistant", "content": "done"}},
	}

	run, err := runService.FinalizeRun(ctx, claimed.ID, agentrun.StatusCompleted, "", responses)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)
	assert.NotNil(t, run.CompletedAt)
	require.Len(t, run.Responses, 1)
	assert.Equal(t, "assistant", run.Responses[0]["type"])
}

func TestRunService_MarkStopped(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("stops a pending run", func(t *testing.T) {
		run := createTestRun(t, client.Client)

		stopped, err := runService.MarkStopped(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusStopped, stopped.Status)
		assert.NotNil(t, stopped.CompletedAt)
	})

	t.Run("rejects terminal runs", func(t *testing.T) {
		run := createTestRun(t, client.Client)
		_, err := runService.FinalizeRun(ctx, run.ID, agentrun.StatusFailed, "boom", nil)
		require.NoError(t, err)

		_, err = runService.MarkStopped(ctx, run.ID)
		assert.ErrorIs(t, err, ErrNotStoppable)
	})
}

func TestRunService_FindStaleRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client)
	claimed, err := runService.ClaimNextPending(ctx, "worker-1")
	require.NoError(t, err)

	// Fresh heartbeat: not stale.
	stale, err := runService.FindStaleRunning(ctx, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, stale)

	// Everything running is stale with a zero cutoff window.
	time.Sleep(10 * time.Millisecond)
	stale, err = runService.FindStaleRunning(ctx, time.Millisecond)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, claimed.ID, stale[0].ID)
}

func TestRunService_Counts(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client)
	createTestRun(t, client.Client)

	depth, err := runService.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	_, err = runService.ClaimNextPending(ctx, "worker-1")
	require.NoError(t, err)

	running, err := runService.CountRunning(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, 1, running)

	depth, err = runService.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}
