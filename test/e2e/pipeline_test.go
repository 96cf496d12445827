package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
)

// A run travels the whole pipeline: enqueued over REST, claimed by a
// worker, streamed through the scripted LLM, finalized, and observable on
// the SSE stream and the dashboard WebSocket.
func TestRunPipelineEndToEnd(t *testing.T) {
	app := NewTestApp(t)
	app.LLMClient.AddText("The answer is 42.")

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, ws.Subscribe(events.GlobalRunsChannel))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	threadID := app.CreateThread(t)
	runID := app.CreateRun(t, threadID, nil)

	run := app.WaitForRunStatus(t, runID, agentrun.StatusCompleted, 15*time.Second)
	assert.Equal(t, "gpt-4o", run["model"])
	assert.NotEmpty(t, run["completed_at"])

	// The buffer snapshot was persisted on the run record.
	responses, _ := run["responses"].([]any)
	assert.NotEmpty(t, responses)

	// The dashboard saw the status transitions on the global channel.
	_, err = ws.WaitForRunStatus("running", 5*time.Second)
	require.NoError(t, err)
	statusEvt, err := ws.WaitForRunStatus("completed", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, runID, statusEvt.Parsed["run_id"])

	// The SSE replay carries the full item sequence.
	frames := app.ReadStream(t, runID, "", 10*time.Second)
	require.NotEmpty(t, frames)
	assert.Equal(t, "The answer is 42.", assistantText(t, frames))

	sts := statusTypes(t, frames)
	require.NotEmpty(t, sts)
	assert.Equal(t, "thread_run_start", sts[0])
	assert.Equal(t, "thread_run_end", sts[len(sts)-1])
	assert.Contains(t, sts, "assistant_response_start")
	assert.Contains(t, sts, "finish")

	// The assistant turn landed in thread history.
	var msgs struct {
		Messages []struct {
			Type string `json:"type"`
		} `json:"messages"`
	}
	app.getJSON(t, "/api/v1/threads/"+threadID+"/messages", &msgs)
	var assistants int
	for _, m := range msgs.Messages {
		if m.Type == "assistant" {
			assistants++
		}
	}
	assert.Equal(t, 1, assistants)

	// The scripted model got exactly one call.
	assert.Equal(t, 1, app.LLMClient.CallCount())
}

// A viewer attached before the model responds receives items live and the
// stream ends at the terminal marker.
func TestStreamDeliversItemsLive(t *testing.T) {
	app := NewTestApp(t)

	release := make(chan struct{})
	blocked := make(chan struct{}, 1)
	app.LLMClient.Add(LLMScriptEntry{
		Text:    "Streamed live.",
		WaitCh:  release,
		OnBlock: blocked,
	})

	threadID := app.CreateThread(t)
	runID := app.CreateRun(t, threadID, nil)

	select {
	case <-blocked:
	case <-time.After(10 * time.Second):
		t.Fatal("model was never called")
	}

	framesCh := make(chan []SSEFrame, 1)
	go func() {
		framesCh <- app.ReadStream(t, runID, "", 15*time.Second)
	}()

	// Give the viewer a moment to subscribe, then let the model answer.
	time.Sleep(200 * time.Millisecond)
	close(release)

	frames := <-framesCh
	require.NotEmpty(t, frames)
	assert.Equal(t, "Streamed live.", assistantText(t, frames))
	sts := statusTypes(t, frames)
	require.NotEmpty(t, sts)
	assert.Equal(t, "thread_run_end", sts[len(sts)-1])

	app.WaitForRunStatus(t, runID, agentrun.StatusCompleted, 10*time.Second)
}

// A model failure finalizes the run as failed with the error recorded.
func TestModelErrorFailsRun(t *testing.T) {
	app := NewTestApp(t)
	app.LLMClient.Add(LLMScriptEntry{Error: assert.AnError})

	threadID := app.CreateThread(t)
	runID := app.CreateRun(t, threadID, nil)

	run := app.WaitForRunStatus(t, runID, agentrun.StatusFailed, 15*time.Second)
	errMsg, _ := run["error_message"].(string)
	assert.NotEmpty(t, errMsg)
}
