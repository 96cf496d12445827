package tools

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool() *FuncTool {
	return NewFuncTool("echo_message", "Echoes the input back.",
		map[string]any{"type": "object"},
		func(_ context.Context, args map[string]any) models.ToolResult {
			return models.ToolResult{Success: true, Output: args["message"]}
		},
	)
}

func TestRegistry_ExecuteKnownTool(t *testing.T) {
	r := NewRegistry()
	r.Register(echoTool())

	result := r.Execute(context.Background(), "echo_message", map[string]any{"message": "hi"})
	assert.True(t, result.Success)
	assert.Equal(t, "hi", result.Output)
}

func TestRegistry_UnknownToolIsUnsuccessfulResult(t *testing.T) {
	r := NewRegistry()

	result := r.Execute(context.Background(), "does_not_exist", nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "does_not_exist")
	assert.Contains(t, result.Error, "not found")
}

func TestRegistry_HyphenatedLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(echoTool())

	tool, ok := r.Get("echo-message")
	require.True(t, ok)
	assert.Equal(t, "echo_message", tool.Name())
}

func TestRegistry_Definitions(t *testing.T) {
	r := NewRegistry()
	r.Register(NewAskTool())
	r.Register(NewCompleteTool())
	r.Register(echoTool())

	defs := r.Definitions()
	require.Len(t, defs, 3)
	// Sorted by name.
	assert.Equal(t, "ask", defs[0].Name)
	assert.Equal(t, "complete", defs[1].Name)
	assert.Equal(t, "echo_message", defs[2].Name)
	assert.NotEmpty(t, defs[0].ParametersSchema)
}

func TestTerminatingTools(t *testing.T) {
	assert.True(t, models.IsTerminatingTool("ask"))
	assert.True(t, models.IsTerminatingTool("complete"))
	assert.False(t, models.IsTerminatingTool("echo_message"))

	ask := NewAskTool()
	result := ask.Execute(context.Background(), map[string]any{"text": "Which environment?"})
	assert.True(t, result.Success)

	result = ask.Execute(context.Background(), map[string]any{})
	assert.False(t, result.Success)

	complete := NewCompleteTool()
	result = complete.Execute(context.Background(), map[string]any{})
	assert.True(t, result.Success)
}

func TestResultContent(t *testing.T) {
	assert.Equal(t, "done", ResultContent(models.ToolResult{Success: true, Output: "done"}))
	assert.Equal(t, "Error: boom", ResultContent(models.ToolResult{Success: false, Error: "boom"}))
}
