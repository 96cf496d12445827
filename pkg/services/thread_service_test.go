package services

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/pkg/models"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	threadService := NewThreadService(client.Client)
	ctx := context.Background()

	t.Run("creates thread with metadata", func(t *testing.T) {
		th, err := threadService.CreateThread(ctx, models.CreateThreadRequest{
			AccountID: "acct-1",
			Metadata:  map[string]any{"source": "api"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, th.ID)

		got, err := threadService.GetThread(ctx, th.ID)
		require.NoError(t, err)
		assert.Equal(t, "acct-1", *got.AccountID)
		assert.Equal(t, "api", got.Metadata["source"])
	})

	t.Run("returns ErrNotFound for unknown thread", func(t *testing.T) {
		_, err := threadService.GetThread(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestThreadService_AddMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	threadService := NewThreadService(client.Client)
	ctx := context.Background()

	th := createTestThread(t, client.Client)

	t.Run("persists message and returns response item", func(t *testing.T) {
		item, err := threadService.AddMessage(ctx, models.AddMessageRequest{
			ThreadID:     th.ID,
			Type:         models.ItemTypeAssistant,
			Content:      map[string]any{"role": "assistant", "content": "Hello"},
			IsLLMMessage: true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, item.MessageID)
		assert.Equal(t, th.ID, item.ThreadID)
		assert.Equal(t, models.ItemTypeAssistant, item.Type)
		assert.Equal(t, "Hello", item.Content["content"])
		assert.True(t, item.IsLLMMessage)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := threadService.AddMessage(ctx, models.AddMessageRequest{Type: "assistant"})
		assert.True(t, IsValidationError(err))

		_, err = threadService.AddMessage(ctx, models.AddMessageRequest{ThreadID: th.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestThreadService_GetLLMMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	threadService := NewThreadService(client.Client)
	ctx := context.Background()

	th := createTestThread(t, client.Client)

	// user → assistant with a native tool call → tool result → status record
	_, err := threadService.AddMessage(ctx, models.AddMessageRequest{
		ThreadID:     th.ID,
		Type:         "user",
		Content:      map[string]any{"role": "user", "content": "List my files"},
		IsLLMMessage: true,
	})
	require.NoError(t, err)

	_, err = threadService.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: th.ID,
		Type:     models.ItemTypeAssistant,
		Content: map[string]any{
			"role":    "assistant",
			"content": "",
			"tool_calls": []any{
				map[string]any{"id": "call_1", "name": "list_files", "arguments": `{"path":"."}`},
			},
		},
		IsLLMMessage: true,
	})
	require.NoError(t, err)

	_, err = threadService.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: th.ID,
		Type:     models.ItemTypeTool,
		Content: map[string]any{
			"role":         "tool",
			"tool_call_id": "call_1",
			"name":         "list_files",
			"content":      "a.txt b.txt",
		},
		IsLLMMessage: true,
	})
	require.NoError(t, err)

	_, err = threadService.AddMessage(ctx, models.AddMessageRequest{
		ThreadID:     th.ID,
		Type:         models.ItemTypeStatus,
		Content:      map[string]any{"status_type": "finish"},
		IsLLMMessage: false,
	})
	require.NoError(t, err)

	prompt, err := threadService.GetLLMMessages(ctx, th.ID)
	require.NoError(t, err)
	require.Len(t, prompt, 3)

	assert.Equal(t, "user", prompt[0].Role)
	assert.Equal(t, "List my files", prompt[0].Content)

	assert.Equal(t, "assistant", prompt[1].Role)
	require.Len(t, prompt[1].ToolCalls, 1)
	assert.Equal(t, "call_1", prompt[1].ToolCalls[0].ID)
	assert.Equal(t, "list_files", prompt[1].ToolCalls[0].Name)
	assert.JSONEq(t, `{"path":"."}`, prompt[1].ToolCalls[0].Arguments)

	assert.Equal(t, "tool", prompt[2].Role)
	assert.Equal(t, "call_1", prompt[2].ToolCallID)
	assert.Equal(t, "list_files", prompt[2].ToolName)
	assert.Equal(t, "a.txt b.txt", prompt[2].Content)
}
