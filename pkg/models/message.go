package models

// CreateThreadRequest contains fields for creating a conversation thread.
type CreateThreadRequest struct {
	ProjectID string         `json:"project_id,omitempty"`
	AccountID string         `json:"account_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AddMessageRequest contains fields for persisting one thread message.
type AddMessageRequest struct {
	ThreadID       string         `json:"thread_id"`
	Type           string         `json:"type"`
	Content        map[string]any `json:"content"`
	IsLLMMessage   bool           `json:"is_llm_message"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	AgentID        *string        `json:"agent_id,omitempty"`
	AgentVersionID *string        `json:"agent_version_id,omitempty"`
}

// PromptMessage is one entry of the LLM-facing conversation built from
// thread history.
type PromptMessage struct {
	Role       string           `json:"role"` // system, user, assistant, tool
	Content    string           `json:"content"`
	ToolCalls  []PromptToolCall `json:"tool_calls,omitempty"`   // assistant messages
	ToolCallID string           `json:"tool_call_id,omitempty"` // tool result messages
	ToolName   string           `json:"tool_name,omitempty"`    // tool result messages
}

// PromptToolCall is a completed native tool call as replayed to the model.
type PromptToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON-encoded
}
