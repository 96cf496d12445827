package processor

import (
	"testing"

	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeBuffer_MergesDeltasByIndex(t *testing.T) {
	b := newNativeBuffer()

	require.Nil(t, b.Add(&llm.ToolCallDeltaChunk{Index: 0, ID: "call_1", Name: "get_weather"}))
	require.Nil(t, b.Add(&llm.ToolCallDeltaChunk{Index: 0, ArgumentsDelta: `{"city":`}))
	call := b.Add(&llm.ToolCallDeltaChunk{Index: 0, ArgumentsDelta: `"Paris"}`})

	require.NotNil(t, call)
	assert.Equal(t, "call_1", call.ID)
	assert.Equal(t, "get_weather", call.FunctionName)
	assert.Equal(t, "Paris", call.Arguments["city"])

	// Completed entries report only once.
	assert.Nil(t, b.Add(&llm.ToolCallDeltaChunk{Index: 0, ArgumentsDelta: " "}))
}

func TestNativeBuffer_InterleavedIndexes(t *testing.T) {
	b := newNativeBuffer()

	b.Add(&llm.ToolCallDeltaChunk{Index: 0, ID: "a", Name: "first"})
	b.Add(&llm.ToolCallDeltaChunk{Index: 1, ID: "b", Name: "second"})
	first := b.Add(&llm.ToolCallDeltaChunk{Index: 0, ArgumentsDelta: `{}`})
	second := b.Add(&llm.ToolCallDeltaChunk{Index: 1, ArgumentsDelta: `{}`})

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, "first", first.FunctionName)
	assert.Equal(t, "second", second.FunctionName)
}

func TestNativeBuffer_DrainRepairsMalformedArguments(t *testing.T) {
	b := newNativeBuffer()

	// Trailing comma and missing closing brace: unparseable as-is.
	b.Add(&llm.ToolCallDeltaChunk{Index: 0, ID: "c", Name: "search", ArgumentsDelta: `{"query": "go",`})

	drained := b.Drain()
	require.Len(t, drained, 1)
	assert.Equal(t, "search", drained[0].FunctionName)
	assert.Equal(t, "go", drained[0].Arguments["query"])
}

func TestNativeBuffer_PromptCalls(t *testing.T) {
	b := newNativeBuffer()
	b.Add(&llm.ToolCallDeltaChunk{Index: 1, ID: "b", Name: "second", ArgumentsDelta: `{}`})
	b.Add(&llm.ToolCallDeltaChunk{Index: 0, ID: "a", Name: "first", ArgumentsDelta: `{"k":1}`})

	calls := b.PromptCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].Name)
	assert.Equal(t, "second", calls[1].Name)
	assert.JSONEq(t, `{"k":1}`, calls[0].Arguments)
}
