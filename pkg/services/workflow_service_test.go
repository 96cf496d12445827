package services

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/pkg/models"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowService_CreateAndDecode(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	ctx := context.Background()

	steps := []models.WorkflowStep{
		{Name: "Fetch data", Description: "Pull the latest metrics", Tool: "http_request"},
		{
			Name: "Check threshold",
			Type: models.StepTypeCondition,
			Conditions: &models.StepCondition{
				Type:       models.ConditionIf,
				Expression: "error_rate > 0.05",
			},
			Children: []models.WorkflowStep{
				{Name: "Page on-call", Tool: "send_message"},
			},
		},
	}

	wf, err := workflowService.CreateWorkflow(ctx, models.CreateWorkflowRequest{
		AgentID: "agent-1",
		Name:    "error watch",
		Steps:   steps,
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", string(wf.Status))

	got, err := workflowService.GetWorkflow(ctx, wf.ID)
	require.NoError(t, err)

	decoded, err := WorkflowSteps(got)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "Fetch data", decoded[0].Name)
	assert.True(t, decoded[1].IsCondition())
	assert.Equal(t, "error_rate > 0.05", decoded[1].Conditions.Expression)
	require.Len(t, decoded[1].Children, 1)
	assert.Equal(t, "send_message", decoded[1].Children[0].Tool)
}

func TestWorkflowService_UpdateAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflowService.CreateWorkflow(ctx, models.CreateWorkflowRequest{
		AgentID: "agent-1",
		Name:    "draft flow",
		Steps:   []models.WorkflowStep{{Name: "Step one"}},
	})
	require.NoError(t, err)

	status := "active"
	updated, err := workflowService.UpdateWorkflow(ctx, wf.ID, models.UpdateWorkflowRequest{
		Status: &status,
		Steps:  []models.WorkflowStep{{Name: "Step one"}, {Name: "Step two"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "active", string(updated.Status))
	assert.Len(t, updated.Steps, 2)

	require.NoError(t, workflowService.DeleteWorkflow(ctx, wf.ID))
	_, err = workflowService.GetWorkflow(ctx, wf.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkflowService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	ctx := context.Background()

	_, err := workflowService.CreateWorkflow(ctx, models.CreateWorkflowRequest{Name: "x"})
	assert.True(t, IsValidationError(err))

	_, err = workflowService.CreateWorkflow(ctx, models.CreateWorkflowRequest{AgentID: "agent-1"})
	assert.True(t, IsValidationError(err))
}
