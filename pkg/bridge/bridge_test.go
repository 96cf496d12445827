package bridge

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/sandbox"
	"github.com/agentd-io/agentd/pkg/services"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bridgeFixture struct {
	bridge    *Bridge
	projects  *services.ProjectService
	threads   *services.ThreadService
	runs      *services.RunService
	workflows *services.WorkflowService
}

func newBridgeFixture(t *testing.T, sandboxes sandbox.Provider) *bridgeFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	f := &bridgeFixture{
		projects:  services.NewProjectService(client.Client),
		threads:   services.NewThreadService(client.Client),
		runs:      services.NewRunService(client.Client),
		workflows: services.NewWorkflowService(client.Client),
	}
	f.bridge = NewBridge(f.projects, f.threads, f.runs, f.workflows, sandboxes, "gpt-4o", []string{"ask", "complete"})
	return f
}

func testTrigger() *ent.Trigger {
	return &ent.Trigger{
		ID:      "trig-1",
		AgentID: "agent-1",
		Name:    "order hook",
	}
}

func TestBridgeExecuteAgent(t *testing.T) {
	f := newBridgeFixture(t, sandbox.NewFakeProvider())
	ctx := context.Background()

	exec, err := f.bridge.Execute(ctx, testTrigger(), &models.TriggerResult{
		Success:            true,
		ShouldExecuteAgent: true,
		AgentPrompt:        `Process webhook data: {"order_id":"o-42"}`,
		ExecutionVariables: map[string]any{"triggered_by": "webhook"},
	})
	require.NoError(t, err)

	// Project scaffolding with a provisioned sandbox.
	project, err := f.projects.GetProject(ctx, exec.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "Trigger: order hook", project.Name)
	assert.NotEmpty(t, project.Sandbox["id"])
	assert.NotEmpty(t, project.Sandbox["vnc_preview"])

	// Thread carries trigger provenance.
	thread, err := f.threads.GetThread(ctx, exec.ThreadID)
	require.NoError(t, err)
	assert.Equal(t, "trig-1", thread.Metadata["trigger_id"])
	assert.Equal(t, true, thread.Metadata["is_trigger_execution"])

	// The prompt landed as the initial LLM-facing user message.
	messages, err := f.threads.GetLLMMessages(ctx, exec.ThreadID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)
	assert.Contains(t, messages[0].Content, "Process webhook data:")

	// Run is enqueued pending for a worker to claim.
	run, err := f.runs.GetRun(ctx, exec.RunID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusPending, run.Status)
	assert.Equal(t, "gpt-4o", run.Model)
	assert.Equal(t, "agent-1", *run.AgentID)
}

func TestBridgeExecuteAgentWithoutSandboxProvider(t *testing.T) {
	f := newBridgeFixture(t, nil)

	exec, err := f.bridge.Execute(context.Background(), testTrigger(), &models.TriggerResult{
		Success:            true,
		ShouldExecuteAgent: true,
		AgentPrompt:        "check the queue",
	})
	require.NoError(t, err)

	project, err := f.projects.GetProject(context.Background(), exec.ProjectID)
	require.NoError(t, err)
	assert.Empty(t, project.Sandbox)
}

func TestBridgeExecuteWorkflow(t *testing.T) {
	f := newBridgeFixture(t, nil)
	ctx := context.Background()

	wf, err := f.workflows.CreateWorkflow(ctx, models.CreateWorkflowRequest{
		AgentID: "agent-1",
		Name:    "daily digest",
		Steps: []models.WorkflowStep{
			{Name: "Start"},
			{Name: "fetch data", Tool: "http_get"},
			{Name: "summarise"},
		},
	})
	require.NoError(t, err)

	exec, err := f.bridge.Execute(ctx, testTrigger(), &models.TriggerResult{
		Success:               true,
		ShouldExecuteWorkflow: true,
		WorkflowID:            wf.ID,
		WorkflowInput:         map[string]any{"region": "eu"},
	})
	require.NoError(t, err)
	assert.Equal(t, wf.ID, exec.WorkflowID)

	// The rendered workflow prompt augments the run's system prompt.
	run, err := f.runs.GetRun(ctx, exec.RunID)
	require.NoError(t, err)
	require.NotNil(t, run.SystemPromptSuffix)
	assert.Contains(t, *run.SystemPromptSuffix, "structured workflow")
	assert.Contains(t, *run.SystemPromptSuffix, "daily digest")
	assert.Contains(t, *run.SystemPromptSuffix, "step_number")

	// The initial user message names the workflow and its input.
	messages, err := f.threads.GetLLMMessages(ctx, exec.ThreadID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Content, `Execute the workflow "daily digest".`)
	assert.Contains(t, messages[0].Content, `"region":"eu"`)
}

func TestBridgeExecuteWorkflowUnknownID(t *testing.T) {
	f := newBridgeFixture(t, nil)

	_, err := f.bridge.Execute(context.Background(), testTrigger(), &models.TriggerResult{
		Success:               true,
		ShouldExecuteWorkflow: true,
		WorkflowID:            "missing",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBridgeExecuteNothingRequested(t *testing.T) {
	f := newBridgeFixture(t, nil)

	_, err := f.bridge.Execute(context.Background(), testTrigger(), &models.TriggerResult{Success: true})
	assert.Error(t, err)
}
