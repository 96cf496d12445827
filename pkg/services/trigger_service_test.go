package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentd-io/agentd/pkg/models"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	triggerService := NewTriggerService(client.Client)
	ctx := context.Background()

	t.Run("creates trigger active by default", func(t *testing.T) {
		trg, err := triggerService.CreateTrigger(ctx, models.CreateTriggerRequest{
			AgentID:     "agent-1",
			ProviderID:  "schedule",
			TriggerType: "schedule",
			Name:        "nightly report",
			Config:      map[string]any{"cron_expression": "0 9 * * *", "user_timezone": "UTC"},
		})
		require.NoError(t, err)
		assert.True(t, trg.IsActive)
		assert.Equal(t, "schedule", trg.ProviderID)

		got, err := triggerService.GetTrigger(ctx, trg.ID)
		require.NoError(t, err)
		assert.Equal(t, "nightly report", got.Name)
		assert.Equal(t, "0 9 * * *", got.Config["cron_expression"])
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := triggerService.CreateTrigger(ctx, models.CreateTriggerRequest{
			ProviderID: "schedule", TriggerType: "schedule", Name: "x",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for unknown trigger", func(t *testing.T) {
		_, err := triggerService.GetTrigger(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTriggerService_UpdateAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	triggerService := NewTriggerService(client.Client)
	ctx := context.Background()

	trg, err := triggerService.CreateTrigger(ctx, models.CreateTriggerRequest{
		AgentID:     "agent-1",
		ProviderID:  "webhook",
		TriggerType: "webhook",
		Name:        "inbound hook",
		Config:      map[string]any{},
	})
	require.NoError(t, err)

	inactive := false
	newName := "renamed hook"
	updated, err := triggerService.UpdateTrigger(ctx, trg.ID, models.UpdateTriggerRequest{
		Name:     &newName,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed hook", updated.Name)
	assert.False(t, updated.IsActive)

	require.NoError(t, triggerService.DeleteTrigger(ctx, trg.ID))
	_, err = triggerService.GetTrigger(ctx, trg.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, triggerService.DeleteTrigger(ctx, trg.ID), ErrNotFound)
}

func TestTriggerService_ListActiveByType(t *testing.T) {
	client := testdb.NewTestClient(t)
	triggerService := NewTriggerService(client.Client)
	ctx := context.Background()

	active, err := triggerService.CreateTrigger(ctx, models.CreateTriggerRequest{
		AgentID: "agent-1", ProviderID: "schedule", TriggerType: "schedule",
		Name: "active", Config: map[string]any{"cron_expression": "* * * * *"},
	})
	require.NoError(t, err)

	disabled, err := triggerService.CreateTrigger(ctx, models.CreateTriggerRequest{
		AgentID: "agent-1", ProviderID: "schedule", TriggerType: "schedule",
		Name: "disabled", Config: map[string]any{"cron_expression": "* * * * *"},
	})
	require.NoError(t, err)
	off := false
	_, err = triggerService.UpdateTrigger(ctx, disabled.ID, models.UpdateTriggerRequest{IsActive: &off})
	require.NoError(t, err)

	_, err = triggerService.CreateTrigger(ctx, models.CreateTriggerRequest{
		AgentID: "agent-1", ProviderID: "webhook", TriggerType: "webhook",
		Name: "hook", Config: map[string]any{},
	})
	require.NoError(t, err)

	schedules, err := triggerService.ListActiveByType(ctx, "schedule")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, active.ID, schedules[0].ID)
}

func TestTriggerService_LogEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	triggerService := NewTriggerService(client.Client)
	ctx := context.Background()

	trg, err := triggerService.CreateTrigger(ctx, models.CreateTriggerRequest{
		AgentID: "agent-1", ProviderID: "webhook", TriggerType: "webhook",
		Name: "hook", Config: map[string]any{},
	})
	require.NoError(t, err)

	evt := models.TriggerEvent{
		TriggerID: trg.ID,
		AgentID:   "agent-1",
		Type:      "webhook",
		RawData:   map[string]any{"action": "opened"},
		Timestamp: time.Now(),
	}
	result := models.TriggerResult{
		Success:            true,
		ShouldExecuteAgent: true,
		AgentPrompt:        `Process webhook data: {"action":"opened"}`,
	}

	log, err := triggerService.LogEvent(ctx, evt, result, "run-1")
	require.NoError(t, err)
	assert.True(t, log.Success)
	assert.True(t, log.ShouldExecuteAgent)
	assert.Equal(t, "run-1", *log.RunID)
	assert.Equal(t, "opened", log.RawData["action"])

	logs, err := triggerService.ListEventLogs(ctx, trg.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, log.ID, logs[0].ID)
}
