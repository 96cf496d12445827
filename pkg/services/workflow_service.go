package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/workflow"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/google/uuid"
)

// WorkflowService manages stored workflow step trees.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflow creates a new workflow in draft status
func (s *WorkflowService) CreateWorkflow(httpCtx context.Context, req models.CreateWorkflowRequest) (*ent.Workflow, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	steps, err := stepsToMaps(req.Steps)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Workflow.Create().
		SetID(uuid.New().String()).
		SetAgentID(req.AgentID).
		SetName(req.Name).
		SetSteps(steps)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	return wf, nil
}

// GetWorkflow retrieves a workflow by ID
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	return wf, nil
}

// ListWorkflowsByAgent retrieves all workflows of an agent, newest first
func (s *WorkflowService) ListWorkflowsByAgent(ctx context.Context, agentID string) ([]*ent.Workflow, error) {
	wfs, err := s.client.Workflow.Query().
		Where(workflow.AgentIDEQ(agentID)).
		Order(ent.Desc(workflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	return wfs, nil
}

// UpdateWorkflow applies a partial update to a workflow
func (s *WorkflowService) UpdateWorkflow(httpCtx context.Context, workflowID string, req models.UpdateWorkflowRequest) (*ent.Workflow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Workflow.UpdateOneID(workflowID)
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.Status != nil {
		builder.SetStatus(workflow.Status(*req.Status))
	}
	if req.Steps != nil {
		steps, err := stepsToMaps(req.Steps)
		if err != nil {
			return nil, err
		}
		builder.SetSteps(steps)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update workflow: %w", err)
	}

	return wf, nil
}

// DeleteWorkflow removes a workflow
func (s *WorkflowService) DeleteWorkflow(httpCtx context.Context, workflowID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Workflow.DeleteOneID(workflowID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete workflow: %w", err)
	}
	return nil
}

// WorkflowSteps decodes a stored workflow's step tree into typed steps
func WorkflowSteps(wf *ent.Workflow) ([]models.WorkflowStep, error) {
	raw, err := json.Marshal(wf.Steps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow steps: %w", err)
	}
	var steps []models.WorkflowStep
	if err := json.Unmarshal(raw, &steps); err != nil {
		return nil, fmt.Errorf("failed to decode workflow steps: %w", err)
	}
	return steps, nil
}

// stepsToMaps converts typed steps into the generic JSON column shape
func stepsToMaps(steps []models.WorkflowStep) ([]map[string]any, error) {
	raw, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow steps: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert workflow steps: %w", err)
	}
	return out, nil
}
