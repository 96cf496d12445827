package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
)

// Stopping a running run cancels the in-flight model stream and finalizes
// the run as stopped.
func TestStopCancelsRunningRun(t *testing.T) {
	app := NewTestApp(t)

	blocked := make(chan struct{}, 1)
	app.LLMClient.Add(LLMScriptEntry{
		BlockUntilCancelled: true,
		OnBlock:             blocked,
	})

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe(events.GlobalRunsChannel))

	threadID := app.CreateThread(t)
	runID := app.CreateRun(t, threadID, nil)

	select {
	case <-blocked:
	case <-time.After(10 * time.Second):
		t.Fatal("model was never called")
	}
	app.WaitForRunStatus(t, runID, agentrun.StatusRunning, 10*time.Second)

	var stopResp map[string]any
	status := app.postJSON(t, "/api/v1/runs/"+runID+"/stop", nil, &stopResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "stopping", stopResp["status"])

	run := app.WaitForRunStatus(t, runID, agentrun.StatusStopped, 15*time.Second)
	assert.NotEmpty(t, run["completed_at"])

	evt, err := ws.WaitForRunStatus("stopped", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, runID, evt.Parsed["run_id"])

	// A second stop is rejected: the run is already terminal.
	status = app.postJSON(t, "/api/v1/runs/"+runID+"/stop", nil, nil)
	assert.Equal(t, http.StatusConflict, status)
}

// Stopping a still-pending run removes it from the queue before any worker
// picks it up.
func TestStopPendingRun(t *testing.T) {
	cfg := TestConfig()
	cfg.Queue.WorkerCount = 0 // nothing claims the run
	app := NewTestApp(t, WithConfig(cfg))

	threadID := app.CreateThread(t)
	runID := app.CreateRun(t, threadID, nil)

	var stopResp map[string]any
	status := app.postJSON(t, "/api/v1/runs/"+runID+"/stop", nil, &stopResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "stopped", stopResp["status"])

	app.WaitForRunStatus(t, runID, agentrun.StatusStopped, 5*time.Second)
	assert.Equal(t, 0, app.LLMClient.CallCount())
}
