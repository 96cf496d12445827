// Package trigger turns external events into agent and workflow runs.
//
// The Service is the façade over trigger persistence; each Provider owns
// one trigger type's side state (scheduler jobs, webhook registrations)
// and must reclaim all of it on teardown.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/models"
)

var (
	// ErrProviderNotFound indicates an unknown provider id.
	ErrProviderNotFound = errors.New("trigger provider not found")

	// ErrTriggerInactive indicates an event arrived for a disabled trigger.
	ErrTriggerInactive = errors.New("trigger is not active")
)

// Provider implements one trigger type.
type Provider interface {
	// ProviderID is the stable identifier triggers bind to.
	ProviderID() string

	// TriggerType is the trigger_type value this provider serves.
	TriggerType() string

	// ValidateConfig checks and normalises a trigger config. The returned
	// map is what gets persisted.
	ValidateConfig(config map[string]any) (map[string]any, error)

	// SetupTrigger establishes provider side state for an active trigger.
	// A non-nil return value replaces the trigger's stored config (used to
	// record provider-assigned ids).
	SetupTrigger(ctx context.Context, t *ent.Trigger) (map[string]any, error)

	// TeardownTrigger reclaims all side state created by SetupTrigger.
	TeardownTrigger(ctx context.Context, t *ent.Trigger) error

	// ProcessEvent decides what an inbound event should execute.
	ProcessEvent(ctx context.Context, evt models.TriggerEvent, config map[string]any) (*models.TriggerResult, error)

	// HealthCheck verifies the provider side state still exists.
	HealthCheck(ctx context.Context, t *ent.Trigger) error

	// FailureBound is how many consecutive delivery failures an active
	// trigger tolerates before it is deactivated. Zero means unbounded.
	FailureBound() int
}

// Registry holds the available providers keyed by provider id.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider. Re-registering an id replaces the previous one.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.ProviderID()] = p
}

// Get returns the provider for an id.
func (r *Registry) Get(providerID string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[providerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, providerID)
	}
	return p, nil
}

// IDs returns the registered provider ids.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	return ids
}
