package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/trigger"
	"github.com/agentd-io/agentd/ent/triggereventlog"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/google/uuid"
)

// TriggerService manages trigger persistence and event logs. Provider
// orchestration (config validation, schedule setup/teardown) lives in
// pkg/trigger and wraps this store.
type TriggerService struct {
	client *ent.Client
}

// NewTriggerService creates a new TriggerService
func NewTriggerService(client *ent.Client) *TriggerService {
	return &TriggerService{client: client}
}

// CreateTrigger persists a new trigger
func (s *TriggerService) CreateTrigger(httpCtx context.Context, req models.CreateTriggerRequest) (*ent.Trigger, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.ProviderID == "" {
		return nil, NewValidationError("provider_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Trigger.Create().
		SetID(uuid.New().String()).
		SetAgentID(req.AgentID).
		SetProviderID(req.ProviderID).
		SetTriggerType(trigger.TriggerType(req.TriggerType)).
		SetName(req.Name).
		SetConfig(req.Config)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create trigger: %w", err)
	}

	return t, nil
}

// GetTrigger retrieves a trigger by ID
func (s *TriggerService) GetTrigger(ctx context.Context, triggerID string) (*ent.Trigger, error) {
	t, err := s.client.Trigger.Query().
		Where(trigger.IDEQ(triggerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trigger: %w", err)
	}

	return t, nil
}

// ListTriggersByAgent retrieves all triggers of an agent, newest first
func (s *TriggerService) ListTriggersByAgent(ctx context.Context, agentID string) ([]*ent.Trigger, error) {
	triggers, err := s.client.Trigger.Query().
		Where(trigger.AgentIDEQ(agentID)).
		Order(ent.Desc(trigger.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}

	return triggers, nil
}

// ListActiveByType retrieves all active triggers of one type — used to
// resync provider state on startup.
func (s *TriggerService) ListActiveByType(ctx context.Context, triggerType string) ([]*ent.Trigger, error) {
	triggers, err := s.client.Trigger.Query().
		Where(
			trigger.TriggerTypeEQ(trigger.TriggerType(triggerType)),
			trigger.IsActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active triggers: %w", err)
	}

	return triggers, nil
}

// UpdateTrigger applies a partial update to a trigger
func (s *TriggerService) UpdateTrigger(httpCtx context.Context, triggerID string, req models.UpdateTriggerRequest) (*ent.Trigger, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Trigger.UpdateOneID(triggerID)
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.IsActive != nil {
		builder.SetIsActive(*req.IsActive)
		if *req.IsActive {
			// Re-activation is a clean slate for failure tracking.
			builder.SetConsecutiveFailures(0)
		}
	}
	if req.Config != nil {
		builder.SetConfig(req.Config)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update trigger: %w", err)
	}

	return t, nil
}

// DeleteTrigger removes a trigger and, via cascade, its event logs
func (s *TriggerService) DeleteTrigger(httpCtx context.Context, triggerID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Trigger.DeleteOneID(triggerID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete trigger: %w", err)
	}
	return nil
}

// LogEvent records the processing outcome of one trigger event. runID is
// empty when no run was started.
func (s *TriggerService) LogEvent(httpCtx context.Context, evt models.TriggerEvent, result models.TriggerResult, runID string) (*ent.TriggerEventLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.TriggerEventLog.Create().
		SetID(uuid.New().String()).
		SetTriggerID(evt.TriggerID).
		SetAgentID(evt.AgentID).
		SetSuccess(result.Success).
		SetShouldExecuteAgent(result.ShouldExecuteAgent).
		SetShouldExecuteWorkflow(result.ShouldExecuteWorkflow)
	if evt.RawData != nil {
		builder.SetRawData(evt.RawData)
	}
	if result.AgentPrompt != "" {
		builder.SetAgentPrompt(result.AgentPrompt)
	}
	if result.WorkflowID != "" {
		builder.SetWorkflowID(result.WorkflowID)
	}
	if runID != "" {
		builder.SetRunID(runID)
	}
	if result.ErrorMessage != "" {
		builder.SetErrorMessage(result.ErrorMessage)
	}

	log, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log trigger event: %w", err)
	}

	return log, nil
}

// RecordEventFailure atomically bumps the trigger's consecutive-failure
// counter and returns the updated row.
func (s *TriggerService) RecordEventFailure(httpCtx context.Context, triggerID string) (*ent.Trigger, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.client.Trigger.UpdateOneID(triggerID).
		AddConsecutiveFailures(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to record trigger failure: %w", err)
	}
	return t, nil
}

// ResetEventFailures clears the consecutive-failure counter after a
// successful delivery.
func (s *TriggerService) ResetEventFailures(httpCtx context.Context, triggerID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Trigger.UpdateOneID(triggerID).
		SetConsecutiveFailures(0).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to reset trigger failures: %w", err)
	}
	return nil
}

// ListEventLogs retrieves recent event logs for a trigger, newest first
func (s *TriggerService) ListEventLogs(ctx context.Context, triggerID string, limit int) ([]*ent.TriggerEventLog, error) {
	q := s.client.TriggerEventLog.Query().
		Where(triggereventlog.TriggerIDEQ(triggerID)).
		Order(ent.Desc(triggereventlog.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	logs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trigger event logs: %w", err)
	}

	return logs, nil
}
