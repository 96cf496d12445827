package trigger

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookProcessEvent(t *testing.T) {
	p := NewWebhookProvider()

	result, err := p.ProcessEvent(context.Background(), models.TriggerEvent{
		TriggerID: "trig-1",
		AgentID:   "agent-1",
		RawData:   map[string]any{"order_id": "o-42"},
	}, nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.ShouldExecuteAgent)
	assert.False(t, result.ShouldExecuteWorkflow)
	assert.Equal(t, `Process webhook data: {"order_id":"o-42"}`, result.AgentPrompt)
	assert.Equal(t, "webhook", result.ExecutionVariables["triggered_by"])
}

func TestWebhookValidateConfig(t *testing.T) {
	p := NewWebhookProvider()

	out, err := p.ValidateConfig(nil)
	require.NoError(t, err)
	assert.NotNil(t, out)

	out, err = p.ValidateConfig(map[string]any{"anything": "goes"})
	require.NoError(t, err)
	assert.Equal(t, "goes", out["anything"])
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewWebhookProvider())

	p, err := r.Get(WebhookProviderID)
	require.NoError(t, err)
	assert.Equal(t, "webhook", p.TriggerType())

	_, err = r.Get("unknown")
	assert.ErrorIs(t, err, ErrProviderNotFound)

	assert.Contains(t, r.IDs(), WebhookProviderID)
}
