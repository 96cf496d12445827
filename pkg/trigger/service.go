package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/services"
)

// Service orchestrates trigger lifecycle across the persistence store and
// the provider owning each trigger's side state.
type Service struct {
	store    *services.TriggerService
	registry *Registry
	logger   *slog.Logger
}

// NewService creates the trigger service.
func NewService(store *services.TriggerService, registry *Registry) *Service {
	return &Service{
		store:    store,
		registry: registry,
		logger:   slog.Default(),
	}
}

// Create validates the config against the provider, persists the trigger,
// and establishes the provider binding. A failed setup removes the record
// again so no half-bound trigger survives.
func (s *Service) Create(ctx context.Context, req models.CreateTriggerRequest) (*ent.Trigger, error) {
	provider, err := s.registry.Get(req.ProviderID)
	if err != nil {
		return nil, err
	}

	normalized, err := provider.ValidateConfig(req.Config)
	if err != nil {
		return nil, services.NewValidationError("config", err.Error())
	}
	req.Config = normalized
	if req.TriggerType == "" {
		req.TriggerType = provider.TriggerType()
	}

	t, err := s.store.CreateTrigger(ctx, req)
	if err != nil {
		return nil, err
	}

	updatedConfig, err := provider.SetupTrigger(ctx, t)
	if err != nil {
		if delErr := s.store.DeleteTrigger(ctx, t.ID); delErr != nil {
			s.logger.Error("Failed to remove trigger after setup failure",
				"trigger_id", t.ID,
				"error", delErr,
			)
		}
		return nil, fmt.Errorf("setup trigger %s: %w", t.ID, err)
	}
	if updatedConfig != nil {
		t, err = s.store.UpdateTrigger(ctx, t.ID, models.UpdateTriggerRequest{Config: updatedConfig})
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("Trigger created",
		"trigger_id", t.ID,
		"agent_id", t.AgentID,
		"provider_id", t.ProviderID,
	)
	return t, nil
}

// Get returns a trigger by id.
func (s *Service) Get(ctx context.Context, triggerID string) (*ent.Trigger, error) {
	return s.store.GetTrigger(ctx, triggerID)
}

// ListByAgent returns an agent's triggers, newest first.
func (s *Service) ListByAgent(ctx context.Context, agentID string) ([]*ent.Trigger, error) {
	return s.store.ListTriggersByAgent(ctx, agentID)
}

// ListEventLogs returns recent processing logs for a trigger.
func (s *Service) ListEventLogs(ctx context.Context, triggerID string, limit int) ([]*ent.TriggerEventLog, error) {
	return s.store.ListEventLogs(ctx, triggerID, limit)
}

// Update applies a partial update. A config change or a re-activation
// tears down the existing provider binding and sets it up anew; if the
// new setup fails the update is aborted and the old binding is restored
// best-effort.
func (s *Service) Update(ctx context.Context, triggerID string, req models.UpdateTriggerRequest) (*ent.Trigger, error) {
	t, err := s.store.GetTrigger(ctx, triggerID)
	if err != nil {
		return nil, err
	}
	provider, err := s.registry.Get(t.ProviderID)
	if err != nil {
		return nil, err
	}

	configChanged := req.Config != nil
	activating := req.IsActive != nil && *req.IsActive && !t.IsActive
	deactivating := req.IsActive != nil && !*req.IsActive && t.IsActive
	willBeActive := t.IsActive
	if req.IsActive != nil {
		willBeActive = *req.IsActive
	}

	if configChanged {
		normalized, err := provider.ValidateConfig(req.Config)
		if err != nil {
			return nil, services.NewValidationError("config", err.Error())
		}
		req.Config = normalized
	}

	rebind := (configChanged && willBeActive) || activating
	if rebind || deactivating {
		if err := provider.TeardownTrigger(ctx, t); err != nil {
			s.logger.Warn("Trigger teardown during update failed",
				"trigger_id", t.ID,
				"error", err,
			)
		}
	}

	if rebind {
		candidate := *t
		if req.Config != nil {
			candidate.Config = req.Config
		}
		updatedConfig, err := provider.SetupTrigger(ctx, &candidate)
		if err != nil {
			// Restore the previous binding so an active trigger keeps firing.
			if t.IsActive {
				if _, rerr := provider.SetupTrigger(ctx, t); rerr != nil {
					s.logger.Error("Failed to restore trigger binding after aborted update",
						"trigger_id", t.ID,
						"error", rerr,
					)
				}
			}
			return nil, fmt.Errorf("setup trigger %s: %w", t.ID, err)
		}
		if updatedConfig != nil {
			req.Config = updatedConfig
		}
	}

	return s.store.UpdateTrigger(ctx, triggerID, req)
}

// Delete tears down the provider binding, then removes the record.
func (s *Service) Delete(ctx context.Context, triggerID string) error {
	t, err := s.store.GetTrigger(ctx, triggerID)
	if err != nil {
		return err
	}

	if provider, perr := s.registry.Get(t.ProviderID); perr == nil {
		if err := provider.TeardownTrigger(ctx, t); err != nil {
			s.logger.Warn("Trigger teardown before delete failed",
				"trigger_id", t.ID,
				"error", err,
			)
		}
	}

	if err := s.store.DeleteTrigger(ctx, triggerID); err != nil {
		return err
	}

	s.logger.Info("Trigger deleted", "trigger_id", triggerID)
	return nil
}

// ProcessEvent routes an inbound payload through the trigger's provider
// and returns the execution decision alongside the event it was derived
// from. The caller logs the outcome once a run id is known, via LogEvent.
func (s *Service) ProcessEvent(ctx context.Context, triggerID string, rawData map[string]any) (*ent.Trigger, models.TriggerEvent, *models.TriggerResult, error) {
	t, err := s.store.GetTrigger(ctx, triggerID)
	if err != nil {
		return nil, models.TriggerEvent{}, nil, err
	}

	evt := models.TriggerEvent{
		TriggerID: t.ID,
		AgentID:   t.AgentID,
		Type:      string(t.TriggerType),
		RawData:   rawData,
		Timestamp: time.Now().UTC(),
	}

	if !t.IsActive {
		return t, evt, nil, ErrTriggerInactive
	}

	provider, err := s.registry.Get(t.ProviderID)
	if err != nil {
		return t, evt, nil, err
	}

	result, err := provider.ProcessEvent(ctx, evt, t.Config)
	if err != nil {
		return t, evt, nil, fmt.Errorf("process event for trigger %s: %w", t.ID, err)
	}
	return t, evt, result, nil
}

// LogEvent records the processing outcome and maintains the trigger's
// consecutive-failure counter. runID is empty when no run was started.
func (s *Service) LogEvent(ctx context.Context, evt models.TriggerEvent, result models.TriggerResult, runID string) {
	if _, err := s.store.LogEvent(ctx, evt, result, runID); err != nil {
		s.logger.Error("Failed to log trigger event",
			"trigger_id", evt.TriggerID,
			"error", err,
		)
	}
	s.trackFailures(ctx, evt.TriggerID, result.Success)
}

// trackFailures resets the counter on success, bumps it on failure, and
// deactivates the trigger once the provider's bound is reached.
func (s *Service) trackFailures(ctx context.Context, triggerID string, success bool) {
	if success {
		if err := s.store.ResetEventFailures(ctx, triggerID); err != nil {
			s.logger.Warn("Failed to reset trigger failure counter",
				"trigger_id", triggerID,
				"error", err,
			)
		}
		return
	}

	t, err := s.store.RecordEventFailure(ctx, triggerID)
	if err != nil {
		s.logger.Warn("Failed to record trigger failure",
			"trigger_id", triggerID,
			"error", err,
		)
		return
	}
	if !t.IsActive {
		return
	}

	provider, err := s.registry.Get(t.ProviderID)
	if err != nil {
		return
	}
	bound := provider.FailureBound()
	if bound <= 0 || t.ConsecutiveFailures < bound {
		return
	}

	s.logger.Warn("Deactivating trigger after consecutive failures",
		"trigger_id", t.ID,
		"failures", t.ConsecutiveFailures,
		"bound", bound,
	)
	if err := provider.TeardownTrigger(ctx, t); err != nil {
		s.logger.Warn("Trigger teardown during deactivation failed",
			"trigger_id", t.ID,
			"error", err,
		)
	}
	inactive := false
	if _, err := s.store.UpdateTrigger(ctx, t.ID, models.UpdateTriggerRequest{IsActive: &inactive}); err != nil {
		s.logger.Error("Failed to deactivate trigger",
			"trigger_id", t.ID,
			"error", err,
		)
	}
}

// ResyncProviders re-establishes provider bindings for active triggers
// whose side state went missing (e.g. the scheduler lost its jobs).
// Called once at startup.
func (s *Service) ResyncProviders(ctx context.Context) error {
	for _, id := range s.registry.IDs() {
		provider, err := s.registry.Get(id)
		if err != nil {
			continue
		}

		triggers, err := s.store.ListActiveByType(ctx, provider.TriggerType())
		if err != nil {
			return fmt.Errorf("list active %s triggers: %w", provider.TriggerType(), err)
		}

		for _, t := range triggers {
			if provider.HealthCheck(ctx, t) == nil {
				continue
			}
			s.logger.Warn("Re-establishing trigger binding", "trigger_id", t.ID)
			updatedConfig, err := provider.SetupTrigger(ctx, t)
			if err != nil {
				s.logger.Error("Failed to re-establish trigger binding",
					"trigger_id", t.ID,
					"error", err,
				)
				continue
			}
			if updatedConfig != nil {
				if _, err := s.store.UpdateTrigger(ctx, t.ID, models.UpdateTriggerRequest{Config: updatedConfig}); err != nil {
					s.logger.Error("Failed to persist re-established trigger config",
						"trigger_id", t.ID,
						"error", err,
					)
				}
			}
		}
	}
	return nil
}
