// Package models defines the DTOs shared between the processor, runner,
// services, and API layers.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ResponseItem types. Every item in a run's response buffer carries one.
const (
	ItemTypeStatus               = "status"
	ItemTypeAssistant            = "assistant"
	ItemTypeTool                 = "tool"
	ItemTypeAssistantResponseEnd = "assistant_response_end"
)

// Status discriminators carried in content.status_type of status items.
const (
	StatusThreadRunStart         = "thread_run_start"
	StatusAssistantResponseStart = "assistant_response_start"
	StatusToolStarted            = "tool_started"
	StatusToolCompleted          = "tool_completed"
	StatusToolFailed             = "tool_failed"
	StatusToolError              = "tool_error"
	StatusToolCallChunk          = "tool_call_chunk"
	StatusFinish                 = "finish"
	StatusThreadRunEnd           = "thread_run_end"
	StatusError                  = "error"
)

// Stream status values carried in metadata.stream_status of assistant items.
const (
	StreamStatusChunk    = "chunk"
	StreamStatusComplete = "complete"
)

// ResponseItem is the unit of the response buffer and the output stream.
// A tagged union discriminated by Type; Content's shape depends on the tag.
type ResponseItem struct {
	MessageID    string         `json:"message_id,omitempty"`
	ThreadID     string         `json:"thread_id"`
	Type         string         `json:"type"`
	Content      map[string]any `json:"content"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IsLLMMessage bool           `json:"is_llm_message"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// StatusType returns the content.status_type discriminator for status items,
// or "" for other item types.
func (i *ResponseItem) StatusType() string {
	if i.Type != ItemTypeStatus || i.Content == nil {
		return ""
	}
	if st, ok := i.Content["status_type"].(string); ok {
		return st
	}
	return ""
}

// IsTerminal reports whether this item ends a viewer's stream: a
// thread_run_end marker or a terminal error status.
func (i *ResponseItem) IsTerminal() bool {
	st := i.StatusType()
	return st == StatusThreadRunEnd || st == StatusError
}

// MarshalForStream encodes the item as delivered to stream viewers:
// content and metadata are string-encoded JSON rather than nested objects.
func (i *ResponseItem) MarshalForStream() ([]byte, error) {
	contentJSON, err := json.Marshal(i.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item content: %w", err)
	}
	metadataJSON, err := json.Marshal(i.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item metadata: %w", err)
	}

	wire := struct {
		MessageID    string    `json:"message_id,omitempty"`
		ThreadID     string    `json:"thread_id"`
		Type         string    `json:"type"`
		Content      string    `json:"content"`
		Metadata     string    `json:"metadata"`
		IsLLMMessage bool      `json:"is_llm_message"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}{
		MessageID:    i.MessageID,
		ThreadID:     i.ThreadID,
		Type:         i.Type,
		Content:      string(contentJSON),
		Metadata:     string(metadataJSON),
		IsLLMMessage: i.IsLLMMessage,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	return json.Marshal(wire)
}

// ToMap converts the item into the generic map form stored in the events table.
func (i *ResponseItem) ToMap() map[string]any {
	m := map[string]any{
		"thread_id":      i.ThreadID,
		"type":           i.Type,
		"content":        i.Content,
		"is_llm_message": i.IsLLMMessage,
		"created_at":     i.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":     i.UpdatedAt.Format(time.RFC3339Nano),
	}
	if i.MessageID != "" {
		m["message_id"] = i.MessageID
	}
	if i.Metadata != nil {
		m["metadata"] = i.Metadata
	}
	return m
}

// ItemFromMap reconstructs a ResponseItem from its stored map form.
// Unknown or missing fields are left zero — the buffer is the source of
// truth and older rows may lack newer fields.
func ItemFromMap(m map[string]any) ResponseItem {
	item := ResponseItem{}
	if v, ok := m["message_id"].(string); ok {
		item.MessageID = v
	}
	if v, ok := m["thread_id"].(string); ok {
		item.ThreadID = v
	}
	if v, ok := m["type"].(string); ok {
		item.Type = v
	}
	if v, ok := m["content"].(map[string]any); ok {
		item.Content = v
	}
	if v, ok := m["metadata"].(map[string]any); ok {
		item.Metadata = v
	}
	if v, ok := m["is_llm_message"].(bool); ok {
		item.IsLLMMessage = v
	}
	if v, ok := m["created_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			item.CreatedAt = t
		}
	}
	if v, ok := m["updated_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			item.UpdatedAt = t
		}
	}
	return item
}
