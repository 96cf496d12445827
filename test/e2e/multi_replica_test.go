package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
	testdb "github.com/agentd-io/agentd/test/database"
)

// Two replicas share one database. A run enqueued through the API replica
// is executed by the worker replica, and everything the worker publishes —
// items, status, the stop control — crosses replicas via NOTIFY/LISTEN.
func TestCrossReplicaExecutionAndStop(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	// Replica A serves the API only; replica B runs the workers.
	apiCfg := TestConfig()
	apiCfg.Queue.WorkerCount = 0
	apiReplica := NewTestApp(t, WithSharedDB(shared), WithConfig(apiCfg), WithInstanceID("replica-a"))

	blocked := make(chan struct{}, 1)
	workerLLM := NewScriptedLLMClient()
	workerLLM.Add(LLMScriptEntry{
		BlockUntilCancelled: true,
		OnBlock:             blocked,
	})
	workerReplica := NewTestApp(t, WithSharedDB(shared), WithLLMClient(workerLLM), WithInstanceID("replica-b"))

	threadID := apiReplica.CreateThread(t)
	runID := apiReplica.CreateRun(t, threadID, nil)

	select {
	case <-blocked:
	case <-time.After(15 * time.Second):
		t.Fatal("worker replica never claimed the run")
	}

	run := apiReplica.WaitForRunStatus(t, runID, agentrun.StatusRunning, 10*time.Second)
	assert.Equal(t, "replica-b", run["instance_id"])
	assert.Equal(t, 0, apiReplica.LLMClient.CallCount())

	// A dashboard on the API replica sees events published by the worker
	// replica.
	ws, err := WSConnect(context.Background(), apiReplica.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe(events.RunChannel(runID)))
	_, err = ws.WaitForRunStatus("running", 10*time.Second)
	require.NoError(t, err)

	// Stop through the API replica: its pool doesn't own the run, so the
	// signal travels over the control channel.
	var stopResp map[string]any
	status := apiReplica.postJSON(t, "/api/v1/runs/"+runID+"/stop", nil, &stopResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "stopping", stopResp["status"])

	apiReplica.WaitForRunStatus(t, runID, agentrun.StatusStopped, 15*time.Second)
	_, err = ws.WaitForRunStatus("stopped", 10*time.Second)
	require.NoError(t, err)

	_ = workerReplica
}

// A run whose instance dies mid-flight is detected by another replica's
// orphan scan and finalized as failed so stream viewers are released.
func TestOrphanedRunFailedByOtherReplica(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	survivor := NewTestApp(t, WithSharedDB(shared), WithInstanceID("survivor"))

	// Simulate a dead replica: a run claimed by an instance whose heartbeat
	// went stale, written directly so the survivor's workers can't race us.
	ctx := context.Background()
	threadID := survivor.CreateThread(t)
	stale := time.Now().Add(-time.Hour)
	deadRun, err := survivor.EntClient.AgentRun.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetModel("gpt-4o").
		SetStatus(agentrun.StatusRunning).
		SetInstanceID("dead-replica").
		SetStartedAt(stale).
		SetLastHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)
	runID := deadRun.ID

	run := survivor.WaitForRunStatus(t, runID, agentrun.StatusFailed, 20*time.Second)
	errMsg, _ := run["error_message"].(string)
	assert.Contains(t, errMsg, "Orphaned")
	assert.NotEmpty(t, run["completed_at"])
	assert.Equal(t, 0, survivor.LLMClient.CallCount())
}
