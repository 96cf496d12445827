package runner

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	// Register a run
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run-1", cancel)

	// Cancel should succeed for registered run
	assert.True(t, pool.CancelRun("run-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown run
	assert.False(t, pool.CancelRun("unknown"))
}

func TestPoolUnregisterRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run-1", cancel)

	// Should find it
	assert.True(t, pool.CancelRun("run-1"))

	// Unregister
	pool.UnregisterRun("run-1")

	// Should not find it anymore
	assert.False(t, pool.CancelRun("run-1"))
}

func TestPoolGetActiveRunIDs(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveRunIDs()
	assert.Empty(t, ids)

	// Register runs
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterRun("run-a", cancel1)
	pool.RegisterRun("run-b", cancel2)

	ids = pool.getActiveRunIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "run-a")
	assert.Contains(t, ids, "run-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestStubExecutor(t *testing.T) {
	executor := NewStubExecutor()

	result := executor.Execute(context.Background(), nil)
	assert.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Nil(t, result.Error)
}

func TestStubExecutorCancelled(t *testing.T) {
	executor := NewStubExecutor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := executor.Execute(ctx, nil)
	assert.Equal(t, agentrun.StatusStopped, result.Status)
	assert.Error(t, result.Error)
}
