package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/agentd-io/agentd/pkg/models"
)

// startStepName marks placeholder entry nodes some builders prepend to a
// workflow; they carry no work and are dropped before rendering.
const startStepName = "Start"

// renderedStep is the prompt-facing shape of one workflow node.
type renderedStep struct {
	StepNumber  int            `json:"step_number,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Tool        string         `json:"tool,omitempty"`
	Condition   string         `json:"condition,omitempty"`
	Then        []renderedStep `json:"then,omitempty"`
}

// workflowSummary aggregates the rendered tree for the model's benefit.
type workflowSummary struct {
	TotalSteps          int  `json:"total_steps"`
	TotalConditions     int  `json:"total_conditions"`
	MaxNestingDepth     int  `json:"max_nesting_depth"`
	HasConditionalLogic bool `json:"has_conditional_logic"`
}

const workflowPromptHeader = `You are executing a structured workflow. Follow these rules exactly:

1. Execute the steps in the order given, starting with step 1.
2. When a step specifies a tool, use exactly that tool.
3. For conditional branches, evaluate the conditions from top to bottom and follow the first branch whose condition holds; follow the "else" branch when none do.
4. After completing each step, briefly report what was done and the outcome before moving on.

Workflow definition:`

// BuildWorkflowPrompt renders a workflow step tree into the system prompt
// augmentation for one run. Instruction steps are numbered depth-first;
// placeholder entry steps are dropped.
func BuildWorkflowPrompt(name string, steps []models.WorkflowStep, input map[string]any, availableTools []string) (string, error) {
	filtered := make([]models.WorkflowStep, 0, len(steps))
	for _, s := range steps {
		if s.Name == startStepName && s.Tool == "" && !s.IsCondition() {
			// Keep any real work nested under the placeholder.
			filtered = append(filtered, s.Children...)
			continue
		}
		filtered = append(filtered, s)
	}

	counter := 0
	rendered := renderSteps(filtered, &counter)

	summary := workflowSummary{
		TotalSteps:      counter,
		TotalConditions: countConditions(filtered),
		MaxNestingDepth: maxDepth(filtered),
	}
	summary.HasConditionalLogic = summary.TotalConditions > 0

	doc := map[string]any{
		"workflow": name,
		"steps":    rendered,
		"summary":  summary,
	}
	if len(input) > 0 {
		doc["input"] = input
	}
	if len(availableTools) > 0 {
		doc["available_tools"] = availableTools
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode workflow prompt: %w", err)
	}

	return fmt.Sprintf("%s\n\n```json\n%s\n```\n\nBegin with step 1 and continue until every applicable step is complete.",
		workflowPromptHeader, encoded), nil
}

func renderSteps(steps []models.WorkflowStep, counter *int) []renderedStep {
	out := make([]renderedStep, 0, len(steps))
	for _, s := range steps {
		node := renderedStep{
			Name:        s.Name,
			Description: s.Description,
			Tool:        s.Tool,
		}
		if s.IsCondition() {
			node.Condition = renderCondition(s.Conditions)
		} else {
			*counter++
			node.StepNumber = *counter
		}
		if len(s.Children) > 0 {
			node.Then = renderSteps(s.Children, counter)
		}
		out = append(out, node)
	}
	return out
}

func renderCondition(c *models.StepCondition) string {
	switch c.Type {
	case models.ConditionElseIf:
		return "else if " + c.Expression
	case models.ConditionElse:
		return "else"
	default:
		return c.Expression
	}
}

func countConditions(steps []models.WorkflowStep) int {
	n := 0
	for _, s := range steps {
		if s.IsCondition() {
			n++
		}
		n += countConditions(s.Children)
	}
	return n
}

func maxDepth(steps []models.WorkflowStep) int {
	if len(steps) == 0 {
		return 0
	}
	deepest := 1
	for _, s := range steps {
		if d := 1 + maxDepth(s.Children); d > deepest {
			deepest = d
		}
	}
	return deepest
}
