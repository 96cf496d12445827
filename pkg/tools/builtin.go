package tools

import (
	"context"
	"fmt"

	"github.com/agentd-io/agentd/pkg/models"
)

// FuncTool adapts a plain function to the Tool interface.
type FuncTool struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, args map[string]any) models.ToolResult
}

// NewFuncTool wraps fn as a Tool.
func NewFuncTool(name, description string, schema map[string]any, fn func(ctx context.Context, args map[string]any) models.ToolResult) *FuncTool {
	return &FuncTool{name: name, description: description, schema: schema, fn: fn}
}

func (t *FuncTool) Name() string        { return t.name }
func (t *FuncTool) Description() string { return t.description }
func (t *FuncTool) Schema() map[string]any {
	return t.schema
}

func (t *FuncTool) Execute(ctx context.Context, args map[string]any) models.ToolResult {
	return t.fn(ctx, args)
}

// NewAskTool returns the terminating tool the agent uses to hand control
// back to the user with a question. Invoking it ends the run.
func NewAskTool() *FuncTool {
	return NewFuncTool(
		models.ToolNameAsk,
		"Ask the user a question and wait for their response. Ends the current run.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "The question to present to the user",
				},
			},
			"required": []string{"text"},
		},
		func(_ context.Context, args map[string]any) models.ToolResult {
			text, _ := args["text"].(string)
			if text == "" {
				return models.ToolResult{Success: false, Error: "ask requires a non-empty 'text' argument"}
			}
			return models.ToolResult{Success: true, Output: text}
		},
	)
}

// NewCompleteTool returns the terminating tool the agent uses to declare the
// task finished. Invoking it ends the run.
func NewCompleteTool() *FuncTool {
	return NewFuncTool(
		models.ToolNameComplete,
		"Mark the task as complete with a final summary. Ends the current run.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Final summary of the completed work",
				},
			},
		},
		func(_ context.Context, args map[string]any) models.ToolResult {
			text, _ := args["text"].(string)
			if text == "" {
				text = "Task marked as complete."
			}
			return models.ToolResult{Success: true, Output: text}
		},
	)
}

// ResultContent renders a ToolResult the way it is shown to the model.
func ResultContent(result models.ToolResult) string {
	if result.Success {
		return fmt.Sprintf("%v", result.Output)
	}
	return fmt.Sprintf("Error: %s", result.Error)
}
