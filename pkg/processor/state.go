package processor

import (
	"context"

	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/models"
)

// Finish reasons the processor adds on top of the provider's.
const (
	FinishReasonAgentTerminated     = "agent_terminated"
	FinishReasonXMLToolLimitReached = "xml_tool_limit_reached"
)

// Sink receives every response item the processor produces, in order. The
// run worker appends the item to the response buffer and publishes the
// new_response notification.
type Sink func(ctx context.Context, item *models.ResponseItem) error

// MessageStore persists thread messages. AddMessage must return the stored
// row including its message id and timestamps.
type MessageStore interface {
	AddMessage(ctx context.Context, req models.AddMessageRequest) (*models.ResponseItem, error)
}

// ToolExecutor resolves and runs tool calls. Unknown names come back as an
// unsuccessful ToolResult, never an error.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, args map[string]any) models.ToolResult
}

// ContinuousState carries what the next auto-continue cycle needs to resume
// mid-run: the content so far, the chunk sequence counter, and the stable
// run-scoped id reused across cycles.
type ContinuousState struct {
	AccumulatedContent string `json:"accumulated_content"`
	Sequence           int    `json:"sequence"`
	ThreadRunID        string `json:"thread_run_id"`
}

// StreamInput is one processing cycle over an LLM chunk stream.
type StreamInput struct {
	ThreadID    string
	ThreadRunID string
	Model       string

	// Prompt is the conversation sent to the model, used for local usage
	// estimation when the provider reports none.
	Prompt []models.PromptMessage

	Chunks <-chan llm.Chunk

	// Continuous resumes a cycle suspended on finish reason length. Nil on
	// the first cycle.
	Continuous *ContinuousState

	// CanAutoContinue is false once the worker's cycle cap is reached.
	CanAutoContinue bool

	Sink Sink
}

// Result summarises one processing cycle.
type Result struct {
	ShouldAutoContinue bool
	Continuous         *ContinuousState
	AgentTerminated    bool
	FinishReason       string
	Usage              *llm.UsageChunk
	Model              string
	Created            int64
	AccumulatedContent string
}

// toolContext threads one tool call's identity through status emissions.
type toolContext struct {
	call               models.ToolCall
	index              int
	assistantMessageID string
	details            *models.ParsingDetails
	result             *models.ToolResult
	resultCh           chan models.ToolResult // set when executing on stream
	started            bool
}
