// Package bridge turns trigger decisions into enqueued agent runs,
// creating the project and thread scaffolding a run needs.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/sandbox"
	"github.com/agentd-io/agentd/pkg/services"
	"github.com/google/uuid"
)

// Execution identifies the run started for one trigger event.
type Execution struct {
	RunID      string `json:"run_id"`
	ThreadID   string `json:"thread_id"`
	ProjectID  string `json:"project_id"`
	AgentID    string `json:"agent_id,omitempty"`
	WorkflowID string `json:"workflow_id,omitempty"`
}

// Bridge creates run scaffolding for trigger-initiated executions.
// sandboxes may be nil when no orchestrator is configured; runs then
// start without one.
type Bridge struct {
	projects     *services.ProjectService
	threads      *services.ThreadService
	runs         *services.RunService
	workflows    *services.WorkflowService
	sandboxes    sandbox.Provider
	defaultModel string
	toolNames    []string
	logger       *slog.Logger
}

// NewBridge creates the execution bridge. toolNames is the flat list of
// tools available to trigger-initiated runs, rendered into workflow
// prompts.
func NewBridge(
	projects *services.ProjectService,
	threads *services.ThreadService,
	runs *services.RunService,
	workflows *services.WorkflowService,
	sandboxes sandbox.Provider,
	defaultModel string,
	toolNames []string,
) *Bridge {
	return &Bridge{
		projects:     projects,
		threads:      threads,
		runs:         runs,
		workflows:    workflows,
		sandboxes:    sandboxes,
		defaultModel: defaultModel,
		toolNames:    toolNames,
		logger:       slog.Default(),
	}
}

// Execute starts the run a trigger result asks for.
func (b *Bridge) Execute(ctx context.Context, t *ent.Trigger, result *models.TriggerResult) (*Execution, error) {
	switch {
	case result.ShouldExecuteWorkflow:
		return b.executeWorkflow(ctx, t, result)
	case result.ShouldExecuteAgent:
		return b.executeAgent(ctx, t, result)
	default:
		return nil, fmt.Errorf("trigger %s result requests no execution", t.ID)
	}
}

func (b *Bridge) executeAgent(ctx context.Context, t *ent.Trigger, result *models.TriggerResult) (*Execution, error) {
	project, thread, err := b.scaffold(ctx, t, "Trigger: "+t.Name)
	if err != nil {
		return nil, err
	}

	if err := b.addUserMessage(ctx, thread.ID, t, result.AgentPrompt, result.ExecutionVariables); err != nil {
		return nil, err
	}

	run, err := b.runs.CreateRun(ctx, models.CreateRunRequest{
		ThreadID:  thread.ID,
		ProjectID: project.ID,
		AgentID:   t.AgentID,
		Model:     b.defaultModel,
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue run for trigger %s: %w", t.ID, err)
	}

	b.logger.Info("Trigger execution enqueued",
		"trigger_id", t.ID,
		"run_id", run.ID,
		"thread_id", thread.ID,
	)

	return &Execution{
		RunID:     run.ID,
		ThreadID:  thread.ID,
		ProjectID: project.ID,
		AgentID:   t.AgentID,
	}, nil
}

func (b *Bridge) executeWorkflow(ctx context.Context, t *ent.Trigger, result *models.TriggerResult) (*Execution, error) {
	wf, err := b.workflows.GetWorkflow(ctx, result.WorkflowID)
	if err != nil {
		return nil, fmt.Errorf("load workflow %s: %w", result.WorkflowID, err)
	}

	steps, err := services.WorkflowSteps(wf)
	if err != nil {
		return nil, err
	}
	prompt, err := BuildWorkflowPrompt(wf.Name, steps, result.WorkflowInput, b.toolNames)
	if err != nil {
		return nil, err
	}

	project, thread, err := b.scaffold(ctx, t, "Workflow: "+wf.Name)
	if err != nil {
		return nil, err
	}

	userMessage := fmt.Sprintf("Execute the workflow %q.", wf.Name)
	if len(result.WorkflowInput) > 0 {
		input, err := json.Marshal(result.WorkflowInput)
		if err != nil {
			return nil, fmt.Errorf("encode workflow input: %w", err)
		}
		userMessage += "\n\nWorkflow input: " + string(input)
	}
	if err := b.addUserMessage(ctx, thread.ID, t, userMessage, result.ExecutionVariables); err != nil {
		return nil, err
	}

	run, err := b.runs.CreateRun(ctx, models.CreateRunRequest{
		ThreadID:           thread.ID,
		ProjectID:          project.ID,
		AgentID:            t.AgentID,
		Model:              b.defaultModel,
		SystemPromptSuffix: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue workflow run for trigger %s: %w", t.ID, err)
	}

	b.logger.Info("Workflow execution enqueued",
		"trigger_id", t.ID,
		"workflow_id", wf.ID,
		"run_id", run.ID,
	)

	return &Execution{
		RunID:      run.ID,
		ThreadID:   thread.ID,
		ProjectID:  project.ID,
		AgentID:    t.AgentID,
		WorkflowID: wf.ID,
	}, nil
}

// scaffold creates the project and thread a trigger-initiated run needs,
// provisioning a sandbox when a provider is configured. A sandbox failure
// degrades the run rather than blocking it.
func (b *Bridge) scaffold(ctx context.Context, t *ent.Trigger, projectName string) (*ent.Project, *ent.Thread, error) {
	project, err := b.projects.CreateProject(ctx, projectName, t.AgentID)
	if err != nil {
		return nil, nil, fmt.Errorf("create project for trigger %s: %w", t.ID, err)
	}

	if b.sandboxes != nil {
		sb, err := b.sandboxes.Create(ctx, uuid.New().String(), project.ID)
		if err != nil {
			b.logger.Warn("Sandbox provisioning failed, run starts without one",
				"trigger_id", t.ID,
				"project_id", project.ID,
				"error", err,
			)
		} else if _, err := b.projects.SetSandbox(ctx, project.ID, sb.ToMap()); err != nil {
			return nil, nil, fmt.Errorf("record sandbox on project %s: %w", project.ID, err)
		}
	}

	thread, err := b.threads.CreateThread(ctx, models.CreateThreadRequest{
		ProjectID: project.ID,
		AccountID: t.AgentID,
		Metadata: map[string]any{
			"agent_id":             t.AgentID,
			"trigger_id":           t.ID,
			"is_trigger_execution": true,
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create thread for trigger %s: %w", t.ID, err)
	}

	return project, thread, nil
}

func (b *Bridge) addUserMessage(ctx context.Context, threadID string, t *ent.Trigger, prompt string, vars map[string]any) error {
	metadata := map[string]any{"trigger_id": t.ID}
	if len(vars) > 0 {
		metadata["execution_variables"] = vars
	}

	_, err := b.threads.AddMessage(ctx, models.AddMessageRequest{
		ThreadID:     threadID,
		Type:         "user",
		Content:      map[string]any{"role": "user", "content": prompt},
		IsLLMMessage: true,
		Metadata:     metadata,
	})
	if err != nil {
		return fmt.Errorf("add trigger message to thread %s: %w", threadID, err)
	}
	return nil
}
