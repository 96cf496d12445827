package models

import "time"

// TriggerEvent is an inbound event routed to a trigger's provider.
type TriggerEvent struct {
	TriggerID string         `json:"trigger_id"`
	AgentID   string         `json:"agent_id"`
	Type      string         `json:"trigger_type"`
	RawData   map[string]any `json:"raw_data"`
	Timestamp time.Time      `json:"timestamp"`
}

// TriggerResult is a provider's decision for one processed event.
type TriggerResult struct {
	Success               bool           `json:"success"`
	ShouldExecuteAgent    bool           `json:"should_execute_agent"`
	ShouldExecuteWorkflow bool           `json:"should_execute_workflow"`
	AgentPrompt           string         `json:"agent_prompt,omitempty"`
	WorkflowID            string         `json:"workflow_id,omitempty"`
	WorkflowInput         map[string]any `json:"workflow_input,omitempty"`
	ExecutionVariables    map[string]any `json:"execution_variables,omitempty"`
	ErrorMessage          string         `json:"error_message,omitempty"`
}

// CreateTriggerRequest contains fields for creating a trigger.
type CreateTriggerRequest struct {
	AgentID     string         `json:"agent_id"`
	ProviderID  string         `json:"provider_id"`
	TriggerType string         `json:"trigger_type"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config"`
}

// UpdateTriggerRequest contains fields for updating a trigger.
// Nil pointers leave the corresponding field unchanged.
type UpdateTriggerRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}
