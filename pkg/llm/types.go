// Package llm provides the client for the model gateway and the normalised
// chunk types the rest of the system consumes.
package llm

import (
	"context"

	"github.com/agentd-io/agentd/pkg/models"
)

// Chunk is one element of a streamed model response.
type Chunk interface {
	isChunk()
}

// TextChunk carries a fragment of visible assistant content.
type TextChunk struct {
	Content string
}

// ReasoningChunk carries a fragment of model reasoning content. Reasoning is
// surfaced to clients but never fed back into the conversation history.
type ReasoningChunk struct {
	Content string
}

// ToolCallDeltaChunk carries an incremental fragment of a native tool call.
// Fragments sharing an Index belong to the same call.
type ToolCallDeltaChunk struct {
	Index          int
	ID             string
	Name           string
	ArgumentsDelta string
}

// FinishChunk signals the end of a model turn.
type FinishChunk struct {
	Reason  string
	Model   string
	Created int64
}

// UsageChunk carries token accounting reported by the gateway.
type UsageChunk struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ErrorChunk carries a provider error surfaced mid-stream.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (*TextChunk) isChunk()          {}
func (*ReasoningChunk) isChunk()     {}
func (*ToolCallDeltaChunk) isChunk() {}
func (*FinishChunk) isChunk()        {}
func (*UsageChunk) isChunk()         {}
func (*ErrorChunk) isChunk()         {}

// Finish reasons normalised by the gateway.
const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonToolCalls     = "tool_calls"
	FinishReasonContentFilter = "content_filter"
)

// ToolDefinition describes a tool exposed to the model for native calling.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string
}

// Request is a single model invocation.
type Request struct {
	RunID       string
	ThreadID    string
	Model       string
	Messages    []models.PromptMessage
	Tools       []ToolDefinition
	Temperature *float32
	MaxTokens   *int32
	Stream      bool
}

// Client generates model responses. Generate returns a channel that is
// closed when the stream ends; errors during streaming arrive as ErrorChunk
// values on the channel.
type Client interface {
	Generate(ctx context.Context, req *Request) (<-chan Chunk, error)
	Close() error
}
