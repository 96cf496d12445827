package bridge

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/agentd-io/agentd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conditionStep(condType, expr string, children ...models.WorkflowStep) models.WorkflowStep {
	return models.WorkflowStep{
		Name:       "branch",
		Type:       models.StepTypeCondition,
		Conditions: &models.StepCondition{Type: condType, Expression: expr},
		Children:   children,
	}
}

// promptDocument extracts the JSON block embedded in a workflow prompt.
func promptDocument(t *testing.T, prompt string) map[string]any {
	t.Helper()

	start := strings.Index(prompt, "```json\n")
	require.GreaterOrEqual(t, start, 0, "prompt has no JSON block")
	rest := prompt[start+len("```json\n"):]
	end := strings.Index(rest, "\n```")
	require.GreaterOrEqual(t, end, 0, "prompt JSON block not closed")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &doc))
	return doc
}

func TestBuildWorkflowPromptNumbersStepsDepthFirst(t *testing.T) {
	steps := []models.WorkflowStep{
		{Name: "Start"},
		{Name: "fetch data", Tool: "http_get"},
		conditionStep(models.ConditionIf, "rows > 0",
			models.WorkflowStep{Name: "summarise", Tool: "summarise"},
			models.WorkflowStep{Name: "store summary"},
		),
		conditionStep(models.ConditionElse, "",
			models.WorkflowStep{Name: "report empty"},
		),
		{Name: "notify"},
	}

	prompt, err := BuildWorkflowPrompt("daily digest", steps, nil, []string{"http_get", "summarise"})
	require.NoError(t, err)
	doc := promptDocument(t, prompt)

	assert.Equal(t, "daily digest", doc["workflow"])

	rendered := doc["steps"].([]any)
	require.Len(t, rendered, 4, "placeholder Start step dropped")

	first := rendered[0].(map[string]any)
	assert.Equal(t, float64(1), first["step_number"])
	assert.Equal(t, "http_get", first["tool"])

	branch := rendered[1].(map[string]any)
	assert.Equal(t, "rows > 0", branch["condition"])
	_, numbered := branch["step_number"]
	assert.False(t, numbered, "condition nodes are not numbered")

	then := branch["then"].([]any)
	assert.Equal(t, float64(2), then[0].(map[string]any)["step_number"])
	assert.Equal(t, float64(3), then[1].(map[string]any)["step_number"])

	elseBranch := rendered[2].(map[string]any)
	assert.Equal(t, "else", elseBranch["condition"])
	assert.Equal(t, float64(4), elseBranch["then"].([]any)[0].(map[string]any)["step_number"])

	last := rendered[3].(map[string]any)
	assert.Equal(t, float64(5), last["step_number"])

	summary := doc["summary"].(map[string]any)
	assert.Equal(t, float64(5), summary["total_steps"])
	assert.Equal(t, float64(2), summary["total_conditions"])
	assert.Equal(t, float64(2), summary["max_nesting_depth"])
	assert.Equal(t, true, summary["has_conditional_logic"])

	tools := doc["available_tools"].([]any)
	assert.Contains(t, tools, "http_get")
}

func TestBuildWorkflowPromptElseIfRendering(t *testing.T) {
	steps := []models.WorkflowStep{
		conditionStep(models.ConditionIf, "x > 10", models.WorkflowStep{Name: "big"}),
		conditionStep(models.ConditionElseIf, "x > 5", models.WorkflowStep{Name: "medium"}),
		conditionStep(models.ConditionElse, "", models.WorkflowStep{Name: "small"}),
	}

	prompt, err := BuildWorkflowPrompt("sizing", steps, nil, nil)
	require.NoError(t, err)
	doc := promptDocument(t, prompt)

	rendered := doc["steps"].([]any)
	assert.Equal(t, "x > 10", rendered[0].(map[string]any)["condition"])
	assert.Equal(t, "else if x > 5", rendered[1].(map[string]any)["condition"])
	assert.Equal(t, "else", rendered[2].(map[string]any)["condition"])
}

func TestBuildWorkflowPromptFlatWorkflow(t *testing.T) {
	steps := []models.WorkflowStep{
		{Name: "step one"},
		{Name: "step two"},
	}

	prompt, err := BuildWorkflowPrompt("plain", steps, map[string]any{"region": "eu"}, nil)
	require.NoError(t, err)
	doc := promptDocument(t, prompt)

	summary := doc["summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["total_steps"])
	assert.Equal(t, float64(0), summary["total_conditions"])
	assert.Equal(t, float64(1), summary["max_nesting_depth"])
	assert.Equal(t, false, summary["has_conditional_logic"])

	input := doc["input"].(map[string]any)
	assert.Equal(t, "eu", input["region"])

	assert.Contains(t, prompt, "Begin with step 1")
}

func TestBuildWorkflowPromptStartWithNestedWork(t *testing.T) {
	steps := []models.WorkflowStep{
		{Name: "Start", Children: []models.WorkflowStep{{Name: "real work"}}},
	}

	prompt, err := BuildWorkflowPrompt("nested start", steps, nil, nil)
	require.NoError(t, err)
	doc := promptDocument(t, prompt)

	rendered := doc["steps"].([]any)
	require.Len(t, rendered, 1)
	assert.Equal(t, "real work", rendered[0].(map[string]any)["name"])
}
