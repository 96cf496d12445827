package trigger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler is an in-memory Scheduler for provider tests.
type fakeScheduler struct {
	mu           sync.Mutex
	jobs         map[string]Job
	nextID       int
	failSchedule bool
	failDeletes  bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{jobs: make(map[string]Job)}
}

func (f *fakeScheduler) Schedule(ctx context.Context, destination, cronExpr string, body []byte, headers map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSchedule {
		return "", fmt.Errorf("scheduler unavailable")
	}
	f.nextID++
	id := fmt.Sprintf("job-%d", f.nextID)
	f.jobs[id] = Job{ID: id, Destination: destination, CronExpr: cronExpr, Body: body, Headers: headers}
	return id, nil
}

func (f *fakeScheduler) Delete(ctx context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDeletes {
		return fmt.Errorf("scheduler unavailable")
	}
	if _, ok := f.jobs[jobID]; !ok {
		return fmt.Errorf("job %s not found", jobID)
	}
	delete(f.jobs, jobID)
	return nil
}

func (f *fakeScheduler) List(ctx context.Context) ([]Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	jobs := make([]Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func newScheduleProvider(sched Scheduler) *ScheduleProvider {
	return NewScheduleProvider(sched, &config.TriggerConfig{
		WebhookBaseURL:         "http://agentd.example",
		MaxConsecutiveFailures: 3,
	})
}

func TestConvertCronToUTC(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		timezone string
		want     string
	}{
		{"utc passthrough", "30 9 * * *", "UTC", "30 9 * * *"},
		{"empty timezone passthrough", "30 9 * * *", "", "30 9 * * *"},
		{"tokyo morning to utc", "0 9 * * *", "Asia/Tokyo", "0 0 * * *"},
		{"tokyo with minutes", "30 9 * * 1", "Asia/Tokyo", "30 0 * * 1"},
		{"half hour offset zone", "0 12 * * *", "Asia/Kolkata", "30 6 * * *"},
		{"wildcard hour passthrough", "*/5 * * * *", "Asia/Tokyo", "*/5 * * * *"},
		{"range hour passthrough", "0 9-17 * * *", "Asia/Tokyo", "0 9-17 * * *"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertCronToUTC(tt.expr, tt.timezone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertCronToUTCErrors(t *testing.T) {
	_, err := ConvertCronToUTC("not a cron", "UTC")
	assert.Error(t, err)

	_, err = ConvertCronToUTC("0 9 * * *", "Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestScheduleValidateConfig(t *testing.T) {
	p := newScheduleProvider(newFakeScheduler())

	t.Run("agent config", func(t *testing.T) {
		out, err := p.ValidateConfig(map[string]any{
			"cron_expression": "0 9 * * *",
			"execution_type":  "agent",
			"agent_prompt":    "check the queue",
			"timezone":        "Asia/Tokyo",
		})
		require.NoError(t, err)
		assert.Equal(t, "0 0 * * *", out["utc_cron_expression"])
		assert.Equal(t, "0 9 * * *", out["cron_expression"])
	})

	t.Run("workflow config", func(t *testing.T) {
		out, err := p.ValidateConfig(map[string]any{
			"cron_expression": "*/10 * * * *",
			"execution_type":  "workflow",
			"workflow_id":     "wf-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "*/10 * * * *", out["utc_cron_expression"])
	})

	t.Run("missing cron", func(t *testing.T) {
		_, err := p.ValidateConfig(map[string]any{"execution_type": "agent", "agent_prompt": "x"})
		assert.ErrorContains(t, err, "cron_expression")
	})

	t.Run("bad execution type", func(t *testing.T) {
		_, err := p.ValidateConfig(map[string]any{"cron_expression": "0 9 * * *", "execution_type": "robot"})
		assert.ErrorContains(t, err, "execution_type")
	})

	t.Run("agent without prompt", func(t *testing.T) {
		_, err := p.ValidateConfig(map[string]any{"cron_expression": "0 9 * * *", "execution_type": "agent"})
		assert.ErrorContains(t, err, "agent_prompt")
	})

	t.Run("workflow without id", func(t *testing.T) {
		_, err := p.ValidateConfig(map[string]any{"cron_expression": "0 9 * * *", "execution_type": "workflow"})
		assert.ErrorContains(t, err, "workflow_id")
	})
}

func TestScheduleSetupAndTeardown(t *testing.T) {
	sched := newFakeScheduler()
	p := newScheduleProvider(sched)
	ctx := context.Background()

	trig := &ent.Trigger{
		ID:      "trig-1",
		AgentID: "agent-1",
		Config: map[string]any{
			"cron_expression":     "0 9 * * *",
			"utc_cron_expression": "0 0 * * *",
			"execution_type":      "agent",
			"agent_prompt":        "check the queue",
		},
	}

	updated, err := p.SetupTrigger(ctx, trig)
	require.NoError(t, err)
	require.Equal(t, "job-1", updated["schedule_job_id"])

	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "http://agentd.example/api/v1/triggers/trig-1/webhook", jobs[0].Destination)
	assert.Equal(t, "0 0 * * *", jobs[0].CronExpr)

	trig.Config = updated
	require.NoError(t, p.HealthCheck(ctx, trig))

	require.NoError(t, p.TeardownTrigger(ctx, trig))
	jobs, err = sched.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	assert.Error(t, p.HealthCheck(ctx, trig))
}

func TestScheduleTeardownFallsBackToURLMatch(t *testing.T) {
	sched := newFakeScheduler()
	p := newScheduleProvider(sched)
	ctx := context.Background()

	// Job registered, but the stored id was lost.
	_, err := sched.Schedule(ctx, "http://agentd.example/api/v1/triggers/trig-9/webhook", "0 0 * * *", nil, nil)
	require.NoError(t, err)

	trig := &ent.Trigger{ID: "trig-9", Config: map[string]any{}}
	require.NoError(t, p.TeardownTrigger(ctx, trig))

	jobs, err := sched.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestScheduleProcessEvent(t *testing.T) {
	p := newScheduleProvider(newFakeScheduler())
	ctx := context.Background()

	t.Run("agent directive from event payload", func(t *testing.T) {
		result, err := p.ProcessEvent(ctx, models.TriggerEvent{
			RawData: map[string]any{
				"execution_type": "agent",
				"agent_prompt":   "summarise yesterday",
			},
		}, map[string]any{})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.ShouldExecuteAgent)
		assert.False(t, result.ShouldExecuteWorkflow)
		assert.Equal(t, "summarise yesterday", result.AgentPrompt)
		assert.Equal(t, "schedule", result.ExecutionVariables["triggered_by"])
	})

	t.Run("workflow directive from config fallback", func(t *testing.T) {
		result, err := p.ProcessEvent(ctx, models.TriggerEvent{RawData: map[string]any{}}, map[string]any{
			"execution_type": "workflow",
			"workflow_id":    "wf-7",
			"workflow_input": map[string]any{"region": "eu"},
		})
		require.NoError(t, err)
		assert.True(t, result.ShouldExecuteWorkflow)
		assert.Equal(t, "wf-7", result.WorkflowID)
		assert.Equal(t, map[string]any{"region": "eu"}, result.WorkflowInput)
	})

	t.Run("unknown execution type", func(t *testing.T) {
		result, err := p.ProcessEvent(ctx, models.TriggerEvent{RawData: map[string]any{}}, map[string]any{})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.ErrorMessage, "execution_type")
	})
}
