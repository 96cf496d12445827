package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/message"
	"github.com/agentd-io/agentd/ent/thread"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/google/uuid"
)

// ThreadService manages conversation threads and their message history.
// It is the MessageStore the response processor persists through.
type ThreadService struct {
	client *ent.Client
}

// NewThreadService creates a new ThreadService
func NewThreadService(client *ent.Client) *ThreadService {
	return &ThreadService{client: client}
}

// CreateThread creates a new conversation thread
func (s *ThreadService) CreateThread(httpCtx context.Context, req models.CreateThreadRequest) (*ent.Thread, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Thread.Create().
		SetID(uuid.New().String())
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if req.AccountID != "" {
		builder.SetAccountID(req.AccountID)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	th, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	return th, nil
}

// GetThread retrieves a thread by ID
func (s *ThreadService) GetThread(ctx context.Context, threadID string) (*ent.Thread, error) {
	th, err := s.client.Thread.Query().
		Where(thread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	return th, nil
}

// AddMessage persists one message to the thread history and returns it as a
// response item. Mid-run persistence must survive request cancellation, so
// the write runs on a background context with a timeout.
func (s *ThreadService) AddMessage(httpCtx context.Context, req models.AddMessageRequest) (*models.ResponseItem, error) {
	if req.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetThreadID(req.ThreadID).
		SetType(req.Type).
		SetContent(req.Content).
		SetIsLlmMessage(req.IsLLMMessage)
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}
	if req.AgentID != nil {
		builder.SetAgentID(*req.AgentID)
	}
	if req.AgentVersionID != nil {
		builder.SetAgentVersionID(*req.AgentVersionID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add message: %w", err)
	}

	item := responseItemFromMessage(msg)
	return &item, nil
}

// GetMessages retrieves all messages of a thread in chronological order
func (s *ThreadService) GetMessages(ctx context.Context, threadID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return msgs, nil
}

// GetLLMMessages builds the LLM-facing conversation from thread history:
// LLM-visible messages only, in chronological order, converted to prompt
// messages. Rows that don't translate (status records, malformed content)
// are skipped.
func (s *ThreadService) GetLLMMessages(ctx context.Context, threadID string) ([]models.PromptMessage, error) {
	msgs, err := s.client.Message.Query().
		Where(
			message.ThreadIDEQ(threadID),
			message.IsLlmMessageEQ(true),
		).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get llm messages: %w", err)
	}

	prompt := make([]models.PromptMessage, 0, len(msgs))
	for _, msg := range msgs {
		if pm, ok := promptMessageFromContent(msg.Content); ok {
			prompt = append(prompt, pm)
		}
	}

	return prompt, nil
}

// responseItemFromMessage converts a persisted message row into the
// response-item shape carried on the stream.
func responseItemFromMessage(msg *ent.Message) models.ResponseItem {
	return models.ResponseItem{
		MessageID:    msg.ID,
		ThreadID:     msg.ThreadID,
		Type:         msg.Type,
		Content:      msg.Content,
		Metadata:     msg.Metadata,
		IsLLMMessage: msg.IsLlmMessage,
		CreatedAt:    msg.CreatedAt,
		UpdatedAt:    msg.UpdatedAt,
	}
}

// promptMessageFromContent converts a stored message content map into a
// prompt message. Returns false for content that carries no role.
func promptMessageFromContent(content map[string]any) (models.PromptMessage, bool) {
	role, _ := content["role"].(string)
	if role == "" {
		return models.PromptMessage{}, false
	}

	pm := models.PromptMessage{Role: role}
	if text, ok := content["content"].(string); ok {
		pm.Content = text
	}
	if id, ok := content["tool_call_id"].(string); ok {
		pm.ToolCallID = id
	}
	if name, ok := content["name"].(string); ok {
		pm.ToolName = name
	}
	if rawCalls, ok := content["tool_calls"].([]any); ok {
		for _, raw := range rawCalls {
			callMap, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			call := models.PromptToolCall{}
			call.ID, _ = callMap["id"].(string)
			call.Name, _ = callMap["name"].(string)
			call.Arguments, _ = callMap["arguments"].(string)
			if call.Name != "" {
				pm.ToolCalls = append(pm.ToolCalls, call)
			}
		}
	}

	return pm, true
}
