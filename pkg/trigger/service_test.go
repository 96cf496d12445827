package trigger

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/services"
	testdb "github.com/agentd-io/agentd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *fakeScheduler) {
	t.Helper()

	client := testdb.NewTestClient(t)
	store := services.NewTriggerService(client.Client)

	sched := newFakeScheduler()
	registry := NewRegistry()
	registry.Register(NewWebhookProvider())
	registry.Register(newScheduleProvider(sched))

	return NewService(store, registry), sched
}

func scheduleCreateRequest() models.CreateTriggerRequest {
	return models.CreateTriggerRequest{
		AgentID:    "agent-1",
		ProviderID: ScheduleProviderID,
		Name:       "morning check",
		Config: map[string]any{
			"cron_expression": "0 9 * * *",
			"timezone":        "Asia/Tokyo",
			"execution_type":  "agent",
			"agent_prompt":    "check the queue",
		},
	}
}

func TestServiceCreateScheduleTrigger(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, scheduleCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "schedule", string(trig.TriggerType))
	assert.True(t, trig.IsActive)
	assert.Equal(t, "0 0 * * *", trig.Config["utc_cron_expression"])
	assert.NotEmpty(t, trig.Config["schedule_job_id"])

	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "0 0 * * *", jobs[0].CronExpr)
}

func TestServiceCreateRejectsBadConfig(t *testing.T) {
	svc, _ := newTestService(t)

	req := scheduleCreateRequest()
	req.Config["execution_type"] = "robot"

	_, err := svc.Create(context.Background(), req)
	assert.True(t, services.IsValidationError(err))
}

func TestServiceCreateRollsBackOnSetupFailure(t *testing.T) {
	svc, sched := newTestService(t)
	sched.failSchedule = true

	trig, err := svc.Create(context.Background(), scheduleCreateRequest())
	require.Error(t, err)
	require.Nil(t, trig)

	// No half-bound trigger survives.
	triggers, err := svc.ListByAgent(context.Background(), "agent-1")
	require.NoError(t, err)
	assert.Empty(t, triggers)
}

func TestServiceUpdateRebindsOnConfigChange(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, scheduleCreateRequest())
	require.NoError(t, err)
	oldJobID := trig.Config["schedule_job_id"]

	newConfig := map[string]any{
		"cron_expression": "0 18 * * *",
		"timezone":        "Asia/Tokyo",
		"execution_type":  "agent",
		"agent_prompt":    "evening check",
	}
	updated, err := svc.Update(ctx, trig.ID, models.UpdateTriggerRequest{Config: newConfig})
	require.NoError(t, err)

	assert.Equal(t, "0 9 * * *", updated.Config["utc_cron_expression"])
	assert.NotEqual(t, oldJobID, updated.Config["schedule_job_id"])

	// Old job torn down, exactly one remains.
	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "0 9 * * *", jobs[0].CronExpr)
}

func TestServiceUpdateDeactivateTearsDown(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, scheduleCreateRequest())
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// Re-activation sets the binding up again.
	active := true
	updated, err = svc.Update(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &active})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	jobs, err = sched.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestServiceDeleteTearsDownFirst(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, scheduleCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, trig.ID))

	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	_, err = svc.Get(ctx, trig.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestServiceProcessEvent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, models.CreateTriggerRequest{
		AgentID:    "agent-1",
		ProviderID: WebhookProviderID,
		Name:       "order hook",
		Config:     map[string]any{},
	})
	require.NoError(t, err)

	gotTrig, evt, result, err := svc.ProcessEvent(ctx, trig.ID, map[string]any{"order_id": "o-42"})
	require.NoError(t, err)
	assert.Equal(t, trig.ID, gotTrig.ID)
	assert.Equal(t, trig.ID, evt.TriggerID)
	assert.True(t, result.ShouldExecuteAgent)
	assert.Contains(t, result.AgentPrompt, "Process webhook data:")

	// Outcome log with a run id.
	svc.LogEvent(ctx, evt, *result, "run-123")
	logs, err := svc.ListEventLogs(ctx, trig.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Success)
	assert.Equal(t, "run-123", *logs[0].RunID)
}

func TestServiceProcessEventInactiveTrigger(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, models.CreateTriggerRequest{
		AgentID:    "agent-1",
		ProviderID: WebhookProviderID,
		Name:       "order hook",
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, _, _, err = svc.ProcessEvent(ctx, trig.ID, map[string]any{})
	assert.ErrorIs(t, err, ErrTriggerInactive)
}

func TestServiceDeactivatesAfterConsecutiveFailures(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, scheduleCreateRequest())
	require.NoError(t, err)

	evt := models.TriggerEvent{TriggerID: trig.ID, AgentID: trig.AgentID, Type: "schedule"}
	failed := models.TriggerResult{Success: false, ErrorMessage: "downstream unavailable"}

	// Failures under the bound leave the trigger firing.
	svc.LogEvent(ctx, evt, failed, "")
	svc.LogEvent(ctx, evt, failed, "")
	got, err := svc.Get(ctx, trig.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 2, got.ConsecutiveFailures)

	// A success wipes the slate.
	svc.LogEvent(ctx, evt, models.TriggerResult{Success: true}, "run-1")
	got, err = svc.Get(ctx, trig.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ConsecutiveFailures)

	// Reaching the bound deactivates and tears down the schedule binding.
	svc.LogEvent(ctx, evt, failed, "")
	svc.LogEvent(ctx, evt, failed, "")
	svc.LogEvent(ctx, evt, failed, "")
	got, err = svc.Get(ctx, trig.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// Re-activation starts from a clean counter.
	active := true
	got, err = svc.Update(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &active})
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 0, got.ConsecutiveFailures)
}

func TestServiceWebhookFailuresNeverDeactivate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, models.CreateTriggerRequest{
		AgentID:    "agent-1",
		ProviderID: WebhookProviderID,
		Name:       "order hook",
		Config:     map[string]any{},
	})
	require.NoError(t, err)

	evt := models.TriggerEvent{TriggerID: trig.ID, AgentID: trig.AgentID, Type: "webhook"}
	failed := models.TriggerResult{Success: false, ErrorMessage: "bad payload"}
	for i := 0; i < 5; i++ {
		svc.LogEvent(ctx, evt, failed, "")
	}

	got, err := svc.Get(ctx, trig.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 5, got.ConsecutiveFailures)
}

func TestServiceResyncProviders(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	trig, err := svc.Create(ctx, scheduleCreateRequest())
	require.NoError(t, err)

	// Scheduler lost its jobs (e.g. it was restarted with empty state).
	jobID := trig.Config["schedule_job_id"].(string)
	require.NoError(t, sched.Delete(ctx, jobID))

	require.NoError(t, svc.ResyncProviders(ctx))

	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	refreshed, err := svc.Get(ctx, trig.ID)
	require.NoError(t, err)
	assert.NotEqual(t, jobID, refreshed.Config["schedule_job_id"])
}
