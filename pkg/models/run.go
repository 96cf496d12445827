package models

import "github.com/agentd-io/agentd/ent"

// Control signals published on a run's control channel.
const (
	ControlStop      = "STOP"
	ControlEndStream = "END_STREAM"
	ControlError     = "ERROR"
)

// CreateRunRequest contains fields for enqueueing an agent run.
type CreateRunRequest struct {
	ThreadID           string         `json:"thread_id"`
	ProjectID          string         `json:"project_id,omitempty"`
	AgentID            string         `json:"agent_id,omitempty"`
	Model              string         `json:"model"`
	ProcessorConfig    map[string]any `json:"processor_config,omitempty"`
	SystemPromptSuffix string         `json:"system_prompt_suffix,omitempty"`
	AgentConfig        map[string]any `json:"agent_config,omitempty"`
}

// RunResponse wraps an AgentRun row.
type RunResponse struct {
	*ent.AgentRun
}

// RunsResponse contains a page of runs.
type RunsResponse struct {
	Runs  []*ent.AgentRun `json:"runs"`
	Total int             `json:"total"`
}

// CreateEventRequest contains fields for appending one buffer event.
type CreateEventRequest struct {
	RunID   string         `json:"run_id"`
	Channel string         `json:"channel"`
	Payload map[string]any `json:"payload"`
}
