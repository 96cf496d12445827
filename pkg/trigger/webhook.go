package trigger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/models"
)

// WebhookProviderID identifies the webhook provider.
const WebhookProviderID = "webhook"

// WebhookProvider accepts arbitrary inbound payloads and hands them to
// the agent as a prompt. There is no external side state, so setup and
// teardown are no-ops.
type WebhookProvider struct{}

// NewWebhookProvider creates the webhook provider.
func NewWebhookProvider() *WebhookProvider {
	return &WebhookProvider{}
}

func (p *WebhookProvider) ProviderID() string { return WebhookProviderID }

func (p *WebhookProvider) TriggerType() string { return "webhook" }

// ValidateConfig accepts any config; webhook config is free-form.
func (p *WebhookProvider) ValidateConfig(cfg map[string]any) (map[string]any, error) {
	if cfg == nil {
		cfg = map[string]any{}
	}
	return cfg, nil
}

func (p *WebhookProvider) SetupTrigger(ctx context.Context, t *ent.Trigger) (map[string]any, error) {
	return nil, nil
}

func (p *WebhookProvider) TeardownTrigger(ctx context.Context, t *ent.Trigger) error {
	return nil
}

// ProcessEvent executes the agent with the raw payload rendered as JSON.
func (p *WebhookProvider) ProcessEvent(ctx context.Context, evt models.TriggerEvent, cfg map[string]any) (*models.TriggerResult, error) {
	data, err := json.Marshal(evt.RawData)
	if err != nil {
		return nil, fmt.Errorf("encode webhook payload: %w", err)
	}

	return &models.TriggerResult{
		Success:            true,
		ShouldExecuteAgent: true,
		AgentPrompt:        "Process webhook data: " + string(data),
		ExecutionVariables: map[string]any{
			"triggered_by": "webhook",
		},
	}, nil
}

func (p *WebhookProvider) HealthCheck(ctx context.Context, t *ent.Trigger) error {
	return nil
}

// FailureBound is zero: deliveries are caller-initiated, so a run of bad
// payloads must not disable the intake.
func (p *WebhookProvider) FailureBound() int { return 0 }
