package trigger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/robfig/cron/v3"
)

const (
	// ScheduleProviderID identifies the schedule provider.
	ScheduleProviderID = "schedule"

	// scheduleJobIDKey is the config key holding the scheduler-assigned
	// job id after setup.
	scheduleJobIDKey = "schedule_job_id"
)

// ScheduleProvider fires triggers on a cron schedule by registering
// recurring jobs with the external scheduler, pointed back at this
// service's own webhook ingress.
type ScheduleProvider struct {
	scheduler      Scheduler
	webhookBaseURL string
	failureBound   int
	logger         *slog.Logger
}

// NewScheduleProvider creates the schedule provider.
func NewScheduleProvider(scheduler Scheduler, cfg *config.TriggerConfig) *ScheduleProvider {
	return &ScheduleProvider{
		scheduler:      scheduler,
		webhookBaseURL: strings.TrimRight(cfg.WebhookBaseURL, "/"),
		failureBound:   cfg.MaxConsecutiveFailures,
		logger:         slog.Default(),
	}
}

// FailureBound deactivates a schedule whose firings keep failing; a single
// failed run leaves the trigger alone.
func (p *ScheduleProvider) FailureBound() int { return p.failureBound }

func (p *ScheduleProvider) ProviderID() string { return ScheduleProviderID }

func (p *ScheduleProvider) TriggerType() string { return "schedule" }

// ValidateConfig checks the schedule config and records the UTC form of
// the cron expression under utc_cron_expression.
func (p *ScheduleProvider) ValidateConfig(cfg map[string]any) (map[string]any, error) {
	expr, _ := cfg["cron_expression"].(string)
	if expr == "" {
		return nil, fmt.Errorf("cron_expression is required")
	}

	executionType, _ := cfg["execution_type"].(string)
	switch executionType {
	case "agent":
		if prompt, _ := cfg["agent_prompt"].(string); prompt == "" {
			return nil, fmt.Errorf("agent_prompt is required for agent execution")
		}
	case "workflow":
		if workflowID, _ := cfg["workflow_id"].(string); workflowID == "" {
			return nil, fmt.Errorf("workflow_id is required for workflow execution")
		}
	default:
		return nil, fmt.Errorf("execution_type must be \"agent\" or \"workflow\", got %q", executionType)
	}

	timezone, _ := cfg["timezone"].(string)
	utcExpr, err := ConvertCronToUTC(expr, timezone)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(cfg)+1)
	for k, v := range cfg {
		out[k] = v
	}
	out["utc_cron_expression"] = utcExpr
	return out, nil
}

// SetupTrigger registers the recurring scheduler job and records its id.
func (p *ScheduleProvider) SetupTrigger(ctx context.Context, t *ent.Trigger) (map[string]any, error) {
	utcExpr, _ := t.Config["utc_cron_expression"].(string)
	if utcExpr == "" {
		utcExpr, _ = t.Config["cron_expression"].(string)
	}
	if utcExpr == "" {
		return nil, fmt.Errorf("trigger %s has no cron expression", t.ID)
	}

	body, err := json.Marshal(map[string]any{
		"trigger_id":     t.ID,
		"agent_id":       t.AgentID,
		"execution_type": t.Config["execution_type"],
		"agent_prompt":   t.Config["agent_prompt"],
		"workflow_id":    t.Config["workflow_id"],
		"workflow_input": t.Config["workflow_input"],
	})
	if err != nil {
		return nil, fmt.Errorf("encode schedule payload: %w", err)
	}

	destination := p.webhookURL(t.ID)
	jobID, err := p.scheduler.Schedule(ctx, destination, utcExpr, body, map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("register scheduler job for trigger %s: %w", t.ID, err)
	}

	p.logger.Info("Scheduler job registered",
		"trigger_id", t.ID,
		"job_id", jobID,
		"cron", utcExpr,
	)

	out := make(map[string]any, len(t.Config)+1)
	for k, v := range t.Config {
		out[k] = v
	}
	out[scheduleJobIDKey] = jobID
	return out, nil
}

// TeardownTrigger deletes the scheduler job, by stored id first and by
// destination URL as a fallback.
func (p *ScheduleProvider) TeardownTrigger(ctx context.Context, t *ent.Trigger) error {
	if jobID, _ := t.Config[scheduleJobIDKey].(string); jobID != "" {
		err := p.scheduler.Delete(ctx, jobID)
		if err == nil {
			return nil
		}
		p.logger.Warn("Scheduler job delete by id failed, falling back to URL match",
			"trigger_id", t.ID,
			"job_id", jobID,
			"error", err,
		)
	}

	jobs, err := p.scheduler.List(ctx)
	if err != nil {
		return fmt.Errorf("list scheduler jobs for trigger %s: %w", t.ID, err)
	}

	destination := p.webhookURL(t.ID)
	for _, job := range jobs {
		if job.Destination != destination {
			continue
		}
		if err := p.scheduler.Delete(ctx, job.ID); err != nil {
			return fmt.Errorf("delete scheduler job %s: %w", job.ID, err)
		}
	}
	return nil
}

// ProcessEvent turns a schedule firing into an execution directive. The
// event payload carries the directive registered at setup; the stored
// config is the fallback for older jobs.
func (p *ScheduleProvider) ProcessEvent(ctx context.Context, evt models.TriggerEvent, cfg map[string]any) (*models.TriggerResult, error) {
	directive := func(key string) string {
		if v, _ := evt.RawData[key].(string); v != "" {
			return v
		}
		v, _ := cfg[key].(string)
		return v
	}

	executionType := directive("execution_type")
	result := &models.TriggerResult{
		Success: true,
		ExecutionVariables: map[string]any{
			"triggered_by":    "schedule",
			"cron_expression": directive("cron_expression"),
		},
	}

	switch executionType {
	case "workflow":
		result.ShouldExecuteWorkflow = true
		result.WorkflowID = directive("workflow_id")
		if input, ok := evt.RawData["workflow_input"].(map[string]any); ok {
			result.WorkflowInput = input
		} else if input, ok := cfg["workflow_input"].(map[string]any); ok {
			result.WorkflowInput = input
		}
		if result.WorkflowID == "" {
			return &models.TriggerResult{
				Success:      false,
				ErrorMessage: "schedule event has no workflow_id",
			}, nil
		}
	case "agent":
		result.ShouldExecuteAgent = true
		result.AgentPrompt = directive("agent_prompt")
		if result.AgentPrompt == "" {
			return &models.TriggerResult{
				Success:      false,
				ErrorMessage: "schedule event has no agent_prompt",
			}, nil
		}
	default:
		return &models.TriggerResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("unknown execution_type %q", executionType),
		}, nil
	}

	return result, nil
}

// HealthCheck verifies the scheduler still knows the trigger's job.
func (p *ScheduleProvider) HealthCheck(ctx context.Context, t *ent.Trigger) error {
	jobID, _ := t.Config[scheduleJobIDKey].(string)
	if jobID == "" {
		return fmt.Errorf("trigger %s has no scheduler job id", t.ID)
	}

	jobs, err := p.scheduler.List(ctx)
	if err != nil {
		return fmt.Errorf("list scheduler jobs: %w", err)
	}
	for _, job := range jobs {
		if job.ID == jobID {
			return nil
		}
	}
	return fmt.Errorf("scheduler job %s for trigger %s not found", jobID, t.ID)
}

func (p *ScheduleProvider) webhookURL(triggerID string) string {
	return fmt.Sprintf("%s/api/v1/triggers/%s/webhook", p.webhookBaseURL, triggerID)
}

// ConvertCronToUTC resolves a cron expression's wall-clock minute and
// hour from the given timezone into UTC. Wildcard or stepped fields pass
// through unchanged, as does an empty or UTC timezone. A fixed reference
// date keeps the conversion deterministic across DST boundaries.
func ConvertCronToUTC(expr, timezone string) (string, error) {
	if _, err := cron.ParseStandard(expr); err != nil {
		return "", fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	if timezone == "" || timezone == "UTC" {
		return expr, nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return expr, nil
	}

	minute, errMin := strconv.Atoi(fields[0])
	hour, errHour := strconv.Atoi(fields[1])
	if errMin != nil || errHour != nil {
		return expr, nil
	}

	utc := time.Date(2000, time.January, 1, hour, minute, 0, 0, loc).UTC()
	fields[0] = strconv.Itoa(utc.Minute())
	fields[1] = strconv.Itoa(utc.Hour())
	return strings.Join(fields, " "), nil
}
