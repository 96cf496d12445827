package processor

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore assigns incrementing message ids and echoes the request back.
type fakeStore struct {
	mu sync.Mutex
	n  int
}

func (s *fakeStore) AddMessage(_ context.Context, req models.AddMessageRequest) (*models.ResponseItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	now := time.Now().UTC()
	return &models.ResponseItem{
		MessageID:    fmt.Sprintf("msg-%d", s.n),
		ThreadID:     req.ThreadID,
		Type:         req.Type,
		Content:      req.Content,
		Metadata:     req.Metadata,
		IsLLMMessage: req.IsLLMMessage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// collector records every emitted item in order.
type collector struct {
	mu    sync.Mutex
	items []models.ResponseItem
}

func (c *collector) sink(_ context.Context, item *models.ResponseItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, *item)
	return nil
}

// tags renders the item sequence as comparable markers.
func (c *collector) tags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.items))
	for _, item := range c.items {
		switch item.Type {
		case models.ItemTypeStatus:
			out = append(out, item.StatusType())
		case models.ItemTypeAssistant:
			if item.Metadata["stream_status"] == models.StreamStatusChunk {
				out = append(out, "assistant_chunk")
			} else {
				out = append(out, "assistant_complete")
			}
		default:
			out = append(out, item.Type)
		}
	}
	return out
}

func (c *collector) firstIndex(tag string) int {
	for i, got := range c.tags() {
		if got == tag {
			return i
		}
	}
	return -1
}

func chunksOf(chunks ...llm.Chunk) <-chan llm.Chunk {
	ch := make(chan llm.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func testRegistry() *tools.Registry {
	r := tools.NewRegistry()
	r.Register(tools.NewFuncTool("list_files", "Lists files.", nil,
		func(_ context.Context, args map[string]any) models.ToolResult {
			return models.ToolResult{Success: true, Output: fmt.Sprintf("files in %v", args["path"])}
		}))
	r.Register(tools.NewCompleteTool())
	return r
}

func newTestProcessor(t *testing.T, cfg Config, registry *tools.Registry) (*Processor, *fakeStore) {
	t.Helper()
	store := &fakeStore{}
	p, err := New(cfg, store, registry, nil, nil)
	require.NoError(t, err)
	return p, store
}

func streamInput(sink Sink, chunks <-chan llm.Chunk) *StreamInput {
	return &StreamInput{
		ThreadID:    "thread-1",
		ThreadRunID: "run-1",
		Model:       "gpt-4",
		Prompt:      []models.PromptMessage{{Role: "user", Content: "List files in /tmp using list_files"}},
		Chunks:      chunks,
		Sink:        sink,
	}
}

func TestProcessStream_SingleXMLToolSequential(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NativeToolCalling = false
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	chunks := chunksOf(
		&llm.TextChunk{Content: "Sure."},
		&llm.TextChunk{Content: `<function_calls><invoke name="list_files"><parameter name="path">/tmp</parameter></invoke></function_calls>`},
		&llm.FinishChunk{Reason: llm.FinishReasonStop, Model: "gpt-4", Created: 1700000000},
	)

	result, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"thread_run_start",
		"assistant_response_start",
		"assistant_chunk",
		"assistant_chunk",
		"assistant_complete",
		"tool_started",
		"tool",
		"tool_completed",
		"finish",
		"assistant_response_end",
		"thread_run_end",
	}, sink.tags())

	assert.Equal(t, llm.FinishReasonStop, result.FinishReason)
	assert.False(t, result.ShouldAutoContinue)
	assert.False(t, result.AgentTerminated)

	// The yielded tool message carries the rich payload in content.
	toolItem := sink.items[6]
	require.Equal(t, models.ItemTypeTool, toolItem.Type)
	assert.Equal(t, "list_files", toolItem.Content["tool_name"])
	toolResult := toolItem.Content["result"].(map[string]any)
	assert.Equal(t, true, toolResult["success"])

	// assistant_response_end reconstructs the provider response.
	end := sink.items[9]
	require.Equal(t, models.ItemTypeAssistantResponseEnd, end.Type)
	choices := end.Content["choices"].([]any)
	choice := choices[0].(map[string]any)
	assert.Equal(t, llm.FinishReasonStop, choice["finish_reason"])
	assert.Equal(t, true, end.Content["streaming"])
	assert.Equal(t, "gpt-4", end.Content["model"])
	assert.NotEmpty(t, end.Content["usage"])
}

func TestProcessStream_TerminatingTool(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	chunks := chunksOf(
		&llm.TextChunk{Content: `<function_calls><invoke name="complete"><parameter name="text">All done</parameter></invoke></function_calls>`},
		&llm.FinishChunk{Reason: llm.FinishReasonStop},
	)

	result, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	tags := sink.tags()
	assert.Equal(t, []string{"tool_completed", "finish", "assistant_response_end", "thread_run_end"},
		tags[len(tags)-4:])
	assert.True(t, result.AgentTerminated)
	assert.Equal(t, FinishReasonAgentTerminated, result.FinishReason)

	finish := sink.items[sink.firstIndex("finish")]
	assert.Equal(t, FinishReasonAgentTerminated, finish.Content["finish_reason"])
}

func TestProcessStream_ParallelTwoTools(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ToolExecutionStrategy = StrategyParallel
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	block := func(path string) string {
		return fmt.Sprintf(`<function_calls><invoke name="list_files"><parameter name="path">%s</parameter></invoke></function_calls>`, path)
	}
	chunks := chunksOf(
		&llm.TextChunk{Content: block("/a") + block("/b")},
		&llm.FinishChunk{Reason: llm.FinishReasonStop},
	)

	_, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	tags := sink.tags()
	var started, completed, toolMsgs []int
	for i, tag := range tags {
		switch tag {
		case "tool_started":
			started = append(started, i)
		case "tool_completed":
			completed = append(completed, i)
		case "tool":
			toolMsgs = append(toolMsgs, i)
		}
	}
	require.Len(t, started, 2)
	require.Len(t, completed, 2)
	assert.Len(t, toolMsgs, 2)

	// Every start precedes every completion; per-index pairing holds.
	assert.Less(t, started[1], completed[0])
	for i := range started {
		assert.Less(t, started[i], completed[i])
	}
}

func TestProcessStream_AutoContinue(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	// Cycle 1 suspends on finish reason length.
	input := streamInput(sink.sink, chunksOf(
		&llm.TextChunk{Content: "Part A"},
		&llm.FinishChunk{Reason: llm.FinishReasonLength},
	))
	input.CanAutoContinue = true

	result, err := p.ProcessStream(context.Background(), input)
	require.NoError(t, err)
	require.True(t, result.ShouldAutoContinue)
	require.NotNil(t, result.Continuous)
	assert.Equal(t, "Part A", result.Continuous.AccumulatedContent)
	assert.Equal(t, "run-1", result.Continuous.ThreadRunID)

	cycle1 := sink.tags()
	assert.NotContains(t, cycle1, "assistant_complete")
	assert.NotContains(t, cycle1, "thread_run_end")

	// Cycle 2 resumes and finishes.
	input2 := streamInput(sink.sink, chunksOf(
		&llm.TextChunk{Content: " Part B"},
		&llm.FinishChunk{Reason: llm.FinishReasonStop},
	))
	input2.Continuous = result.Continuous
	input2.CanAutoContinue = true

	result2, err := p.ProcessStream(context.Background(), input2)
	require.NoError(t, err)
	assert.False(t, result2.ShouldAutoContinue)

	all := sink.tags()
	// Lifecycle events appear exactly once across both cycles.
	assert.Equal(t, 1, countTag(all, "thread_run_start"))
	assert.Equal(t, 1, countTag(all, "assistant_response_start"))
	assert.Equal(t, 1, countTag(all, "assistant_complete"))
	assert.Equal(t, 1, countTag(all, "assistant_response_end"))
	assert.Equal(t, 1, countTag(all, "thread_run_end"))

	// Final assistant message joins both cycles' content.
	for _, item := range sink.items {
		if item.Type == models.ItemTypeAssistant && item.Metadata["stream_status"] == models.StreamStatusComplete {
			assert.Equal(t, "Part A Part B", item.Content["content"])
		}
	}

	// Chunk sequences are strictly increasing across the cycles.
	last := -1
	for _, item := range sink.items {
		if item.Type == models.ItemTypeAssistant && item.Metadata["stream_status"] == models.StreamStatusChunk {
			seq := item.Metadata["sequence"].(int)
			assert.Greater(t, seq, last)
			last = seq
		}
	}
}

func TestProcessStream_XMLToolCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxXMLToolCalls = 1
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	first := `<function_calls><invoke name="list_files"><parameter name="path">/a</parameter></invoke></function_calls>`
	second := `<function_calls><invoke name="list_files"><parameter name="path">/b</parameter></invoke></function_calls>`
	chunks := chunksOf(
		&llm.TextChunk{Content: "Plan:" + first + second + " trailing text"},
		&llm.FinishChunk{Reason: llm.FinishReasonStop},
	)

	result, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	assert.Equal(t, FinishReasonXMLToolLimitReached, result.FinishReason)
	assert.Equal(t, "Plan:"+first, result.AccumulatedContent)
	assert.Equal(t, 1, countTag(sink.tags(), "tool_started"))
}

func TestProcessStream_XMLToolCapFreezesLaterChunks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxXMLToolCalls = 1
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	block := `<function_calls><invoke name="list_files"><parameter name="path">/a</parameter></invoke></function_calls>`
	chunks := chunksOf(
		&llm.TextChunk{Content: "Sure." + block},
		&llm.TextChunk{Content: " trailing prose after the cap"},
		&llm.TextChunk{Content: " and more"},
		&llm.FinishChunk{Reason: llm.FinishReasonStop},
	)

	result, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	// Content is frozen at the cut point; chunks after the cap are dropped.
	assert.Equal(t, FinishReasonXMLToolLimitReached, result.FinishReason)
	assert.Equal(t, "Sure."+block, result.AccumulatedContent)
	assert.Equal(t, 1, countTag(sink.tags(), "assistant_chunk"))

	for _, item := range sink.items {
		if item.Type == models.ItemTypeAssistant && item.Metadata["stream_status"] == models.StreamStatusComplete {
			assert.Equal(t, "Sure."+block, item.Content["content"])
		}
	}
}

func TestProcessStream_XMLToolCapRepeatedIdenticalBlocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxXMLToolCalls = 2
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	// Two byte-identical blocks: the cut must land after the second one,
	// not at the first occurrence of the block text.
	block := `<function_calls><invoke name="list_files"><parameter name="path">/a</parameter></invoke></function_calls>`
	chunks := chunksOf(
		&llm.TextChunk{Content: block + " and again " + block + " trailing"},
		&llm.FinishChunk{Reason: llm.FinishReasonStop},
	)

	result, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	assert.Equal(t, FinishReasonXMLToolLimitReached, result.FinishReason)
	assert.Equal(t, block+" and again "+block, result.AccumulatedContent)
	assert.Equal(t, 2, countTag(sink.tags(), "tool_started"))
}

func TestProcessStream_UnknownToolBecomesFailedResult(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := newTestProcessor(t, cfg, tools.NewRegistry())
	sink := &collector{}

	chunks := chunksOf(
		&llm.TextChunk{Content: `<function_calls><invoke name="nope"><parameter name="x">1</parameter></invoke></function_calls>`},
		&llm.FinishChunk{Reason: llm.FinishReasonStop},
	)

	_, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	tags := sink.tags()
	assert.Equal(t, 1, countTag(tags, "tool_failed"))
	assert.Equal(t, 0, countTag(tags, "tool_error"))
	assert.Equal(t, 1, countTag(tags, "thread_run_end"))
}

func TestProcessStream_NativeToolCall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XMLToolCalling = false
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	chunks := chunksOf(
		&llm.ToolCallDeltaChunk{Index: 0, ID: "call_9", Name: "list_files"},
		&llm.ToolCallDeltaChunk{Index: 0, ArgumentsDelta: `{"path":"/tmp"}`},
		&llm.FinishChunk{Reason: llm.FinishReasonToolCalls},
	)

	_, err := p.ProcessStream(context.Background(), streamInput(sink.sink, chunks))
	require.NoError(t, err)

	tags := sink.tags()
	assert.Equal(t, 2, countTag(tags, "tool_call_chunk"))
	assert.Equal(t, 1, countTag(tags, "tool_completed"))

	// The final assistant message replays the native call to the model.
	for _, item := range sink.items {
		if item.Type == models.ItemTypeAssistant && item.Metadata["stream_status"] == models.StreamStatusComplete {
			calls := item.Content["tool_calls"].([]models.PromptToolCall)
			require.Len(t, calls, 1)
			assert.Equal(t, "call_9", calls[0].ID)
		}
	}
}

func TestProcessStream_CancelledContext(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan llm.Chunk) // never closed
	done := make(chan struct{})

	var runErr error
	go func() {
		_, runErr = p.ProcessStream(ctx, streamInput(sink.sink, ch))
		close(done)
	}()

	ch <- &llm.TextChunk{Content: "partial"}
	cancel()
	<-done

	require.ErrorIs(t, runErr, context.Canceled)
}

func TestProcessResponse_NonStreaming(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := newTestProcessor(t, cfg, testRegistry())
	sink := &collector{}

	result, err := p.ProcessResponse(context.Background(), &ResponseInput{
		ThreadID:     "thread-1",
		ThreadRunID:  "run-1",
		Model:        "gpt-4",
		Content:      `Done. <function_calls><invoke name="list_files"><parameter name="path">/tmp</parameter></invoke></function_calls>`,
		FinishReason: llm.FinishReasonStop,
		Sink:         sink.sink,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"thread_run_start",
		"assistant_complete",
		"tool_started",
		"tool",
		"tool_completed",
		"finish",
		"assistant_response_end",
		"thread_run_end",
	}, sink.tags())
	assert.Equal(t, llm.FinishReasonStop, result.FinishReason)
	assert.NotNil(t, result.Usage)
}

func countTag(tags []string, tag string) int {
	n := 0
	for _, got := range tags {
		if got == tag {
			n++
		}
	}
	return n
}
