package e2e

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent/agentrun"
)

// A webhook delivery travels the whole ingress: provider decision, project
// and thread scaffolding (with a sandbox from the provisioner), run
// execution, and the event log.
func TestWebhookTriggerExecutesAgent(t *testing.T) {
	app := NewTestApp(t)
	app.LLMClient.AddText("Order processed.")

	var trig struct {
		ID      string `json:"id"`
		AgentID string `json:"agent_id"`
	}
	status := app.postJSON(t, "/api/v1/agents/agent-7/triggers", map[string]any{
		"provider_id": "webhook",
		"name":        "order-intake",
		"config":      map[string]any{},
	}, &trig)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "agent-7", trig.AgentID)

	var accepted struct {
		Status      string `json:"status"`
		ExecutionID string `json:"execution_id"`
		ThreadID    string `json:"thread_id"`
		AgentID     string `json:"agent_id"`
	}
	status = app.postJSON(t, "/api/v1/triggers/"+trig.ID+"/webhook", map[string]any{
		"order_id": "o-42",
	}, &accepted)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "accepted", accepted.Status)
	assert.Equal(t, "agent-7", accepted.AgentID)
	require.NotEmpty(t, accepted.ExecutionID)

	run := app.WaitForRunStatus(t, accepted.ExecutionID, agentrun.StatusCompleted, 15*time.Second)
	assert.Equal(t, "agent-7", run["agent_id"])

	// The delivery payload became the user prompt.
	var msgs struct {
		Messages []struct {
			Type    string         `json:"type"`
			Content map[string]any `json:"content"`
		} `json:"messages"`
	}
	app.getJSON(t, "/api/v1/threads/"+accepted.ThreadID+"/messages", &msgs)
	var prompt string
	for _, m := range msgs.Messages {
		if m.Type == "user" {
			prompt, _ = m.Content["content"].(string)
		}
	}
	assert.True(t, strings.HasPrefix(prompt, "Process webhook data: "), "prompt %q", prompt)
	assert.Contains(t, prompt, "o-42")

	// The scaffolded project got a sandbox from the fake provisioner.
	var thread struct {
		ProjectID string `json:"project_id"`
	}
	app.getJSON(t, "/api/v1/threads/"+accepted.ThreadID, &thread)
	require.NotEmpty(t, thread.ProjectID)
	project, err := app.EntClient.Project.Get(context.Background(), thread.ProjectID)
	require.NoError(t, err)
	assert.NotEmpty(t, project.Sandbox["id"])
	assert.NotEmpty(t, project.Sandbox["vnc_preview"])

	// The delivery is logged with the run it started.
	var logs struct {
		Logs []struct {
			Success bool    `json:"success"`
			RunID   *string `json:"run_id"`
		} `json:"logs"`
	}
	app.getJSON(t, "/api/v1/triggers/"+trig.ID+"/logs", &logs)
	require.Len(t, logs.Logs, 1)
	assert.True(t, logs.Logs[0].Success)
	require.NotNil(t, logs.Logs[0].RunID)
	assert.Equal(t, accepted.ExecutionID, *logs.Logs[0].RunID)
}

// Deliveries to a deactivated trigger are rejected without executing
// anything.
func TestWebhookToInactiveTrigger(t *testing.T) {
	app := NewTestApp(t)

	var trig struct {
		ID string `json:"id"`
	}
	status := app.postJSON(t, "/api/v1/agents/agent-7/triggers", map[string]any{
		"provider_id": "webhook",
		"name":        "paused-intake",
		"config":      map[string]any{},
	}, &trig)
	require.Equal(t, http.StatusCreated, status)

	req, err := http.NewRequest(http.MethodPatch, app.BaseURL+"/api/v1/triggers/"+trig.ID,
		strings.NewReader(`{"is_active": false}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status = app.postJSON(t, "/api/v1/triggers/"+trig.ID+"/webhook", map[string]any{}, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, 0, app.LLMClient.CallCount())
}
